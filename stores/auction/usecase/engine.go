package usecase

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/keylock"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/base/metrics"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
)

// engine carries the state and collaborators shared by both auction formats.
// Format-specific behavior lives in ascendingEngine and decayEngine; the
// router owns dispatch and the admin surface.
type engine struct {
	auctions    auction.Repo
	escrows     auction.EscrowRepo
	configs     auction.ConfigRepo
	activities  auction.ActivityRepo
	tx          auction.TxRunner
	transferrer domain.AssetTransferrer
	distributor domain.PaymentDistributor
	royalties   domain.RoyaltyRegistry
	locks       *keylock.KeyLock
	met         metrics.Service
	nowFn       func() time.Time

	// validator is operator-replaceable at runtime, guarded separately
	// from the per-auction locks.
	vmu       sync.RWMutex
	validator domain.AvailabilityValidator
}

// availability returns the current validator reference.
func (e *engine) availability() (domain.AvailabilityValidator, error) {
	e.vmu.RLock()
	defer e.vmu.RUnlock()
	if e.validator == nil {
		return nil, domain.ErrValidatorNotSet
	}
	return e.validator, nil
}

func (e *engine) setValidator(v domain.AvailabilityValidator) {
	e.vmu.Lock()
	e.validator = v
	e.vmu.Unlock()
}

// config loads the marketplace config, falling back to defaults when the
// operator has never written one.
func (e *engine) config(c ctx.Ctx) (*auction.Config, error) {
	cfg, err := e.configs.Get(c)
	if err == domain.ErrConfigNotFound {
		return auction.DefaultConfig(), nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("failed to configs.Get")
		return nil, err
	}
	return cfg, nil
}

// recordActivity appends to the auction's history. Best-effort: a failed
// append is logged and never fails the operation that caused it.
func (e *engine) recordActivity(c ctx.Ctx, id auction.Id, kind auction.ActivityKind, actor domain.Address, amount string) {
	act := auction.NewActivity(id, kind, actor, amount, e.nowFn())
	if err := e.activities.Insert(c, act); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
			"kind":      kind,
		}).Error("failed to activities.Insert")
	}
	e.met.BumpSum("auction.activity", 1, "kind", string(kind))
}

// create validates and persists a new auction of either format together
// with its empty escrow ledger. The availability check is blocking: a
// validator error or an unavailable asset aborts creation.
func (e *engine) create(c ctx.Ctx, caller domain.Address, params auction.CreateParams) (*auction.Auction, error) {
	cfg, err := e.config(c)
	if err != nil {
		return nil, err
	}

	params.Asset = params.Asset.LowerCase()
	startPrice, reservePrice, err := auction.ValidateCreation(params, cfg)
	if err != nil {
		return nil, err
	}

	validator, err := e.availability()
	if err != nil {
		return nil, err
	}
	available, err := validator.IsAvailable(c, params.Asset, caller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"asset": params.Asset.Key(),
		}).Error("failed to validator.IsAvailable")
		return nil, xerrors.Errorf("availability check: %w", err)
	}
	if !available {
		return nil, domain.ErrAssetNotAvailable
	}

	// one live auction per asset
	active, err := e.auctions.FindAll(c, auction.WithAsset(params.Asset), auction.WithStatus(auction.StatusActive))
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, domain.ErrAssetNotAvailable
	}

	now := e.nowFn()
	a := &auction.Auction{
		Id:           auction.DeriveId(params.Asset, caller, now),
		Asset:        params.Asset,
		AssetKey:     params.Asset.Key(),
		Seller:       caller.ToLower(),
		Format:       params.Format,
		StartPrice:   startPrice.String(),
		ReservePrice: reservePrice.String(),
		StartTime:    now,
		EndTime:      now.Add(params.Duration),
		Status:       auction.StatusActive,
		HighestBid:   "0",
		DropRateBps:  params.DropRateBps,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validator.SetInAuction(c, params.Asset, caller); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"asset": params.Asset.Key(),
		}).Error("failed to validator.SetInAuction")
		return nil, xerrors.Errorf("mark in auction: %w", err)
	}

	// auction record and ledger commit or roll back together
	persist := func(c ctx.Ctx) error {
		if err := e.auctions.Insert(c, a); err != nil {
			return err
		}
		return e.escrows.Save(c, auction.NewEscrowLedger(a.Id))
	}
	if err := e.tx.RunWithTransaction(c, persist); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
		}).Error("failed to persist auction")
		// release the tracked flag so the asset is not stuck
		if verr := validator.SetAvailable(c, params.Asset, caller); verr != nil {
			c.WithFields(log.Fields{
				"err":   verr,
				"asset": params.Asset.Key(),
			}).Error("failed to validator.SetAvailable")
		}
		return nil, err
	}

	e.recordActivity(c, a.Id, auction.ActivityCreated, caller, startPrice.String())
	e.met.BumpSum("auction.created", 1, "format", string(a.Format))
	return a, nil
}

// distributeProceeds splits the final price into fee, royalty and seller
// proceeds and issues the three payouts. The sale itself already stands:
// a failed payout is logged and surfaced but does not undo settlement.
func (e *engine) distributeProceeds(c ctx.Ctx, a *auction.Auction, finalPrice decimal.Decimal, cfg *auction.Config) error {
	royaltyRecipient, royaltyBps, err := e.royalties.RoyaltyInfo(c, a.Asset)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"asset": a.Asset.Key(),
		}).Error("failed to royalties.RoyaltyInfo")
		return xerrors.Errorf("royalty lookup: %w", domain.ErrRoyaltyLookupError)
	}

	fee, royalty, seller, err := auction.PaymentSplit(finalPrice, cfg.FeeBps, royaltyBps)
	if err != nil {
		return err
	}

	// no recipient configured means no fee is collected; the leg stays
	// with the seller instead of stranding at the custody service
	if cfg.FeeRecipient.IsEmpty() {
		seller = seller.Add(fee)
		fee = decimal.Zero
	}

	var firstErr error
	pay := func(recipient domain.Address, amount decimal.Decimal, leg string) {
		if amount.IsZero() || recipient.IsEmpty() {
			return
		}
		if err := e.distributor.Payout(c, recipient, amount); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": a.Id,
				"recipient": recipient,
				"amount":    amount.String(),
				"leg":       leg,
			}).Error("failed to distributor.Payout")
			e.met.BumpSum("auction.payout.err", 1, "leg", leg)
			if firstErr == nil {
				firstErr = xerrors.Errorf("%s payout: %w", leg, domain.ErrTransferFailed)
			}
		}
	}

	pay(cfg.FeeRecipient, fee, "fee")
	pay(royaltyRecipient, royalty, "royalty")
	pay(a.Seller, seller, "seller")

	return firstErr
}

// refund pays out the caller's pending refund with zero-then-pay ordering:
// the owed amount is zeroed and persisted before the transfer, and restored
// when the transfer reports failure.
func (e *engine) refund(c ctx.Ctx, ledger *auction.EscrowLedger, bidder domain.Address) (decimal.Decimal, error) {
	owed, err := ledger.BeginRefund(bidder)
	if err != nil {
		return decimal.Zero, err
	}
	if err := e.escrows.Save(c, ledger); err != nil {
		ledger.RollbackRefund(bidder, owed)
		return decimal.Zero, err
	}

	if err := e.distributor.Payout(c, bidder, owed); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": ledger.AuctionId,
			"bidder":    bidder,
			"amount":    owed.String(),
		}).Error("failed to distributor.Payout")
		ledger.RollbackRefund(bidder, owed)
		if serr := e.escrows.Save(c, ledger); serr != nil {
			c.WithFields(log.Fields{
				"err":       serr,
				"auctionId": ledger.AuctionId,
			}).Error("failed to escrows.Save")
		}
		return decimal.Zero, xerrors.Errorf("refund payout: %w", domain.ErrTransferFailed)
	}

	ledger.CommitRefund(bidder, e.nowFn())
	if err := e.escrows.Save(c, ledger); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": ledger.AuctionId,
		}).Error("failed to escrows.Save")
	}
	return owed, nil
}

// notifyAvailable clears the tracked in-auction flag. Best-effort on the
// settle and cancel paths.
func (e *engine) notifyAvailable(c ctx.Ctx, a *auction.Auction) {
	validator, err := e.availability()
	if err != nil {
		c.WithFields(log.Fields{"auctionId": a.Id}).Error("validator not set")
		return
	}
	if err := validator.SetAvailable(c, a.Asset, a.Seller); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
		}).Error("failed to validator.SetAvailable")
	}
}

// notifySold marks the asset sold to the buyer. Best-effort.
func (e *engine) notifySold(c ctx.Ctx, a *auction.Auction, buyer domain.Address) {
	validator, err := e.availability()
	if err != nil {
		c.WithFields(log.Fields{"auctionId": a.Id}).Error("validator not set")
		return
	}
	if err := validator.SetSold(c, a.Asset, a.Seller, buyer); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"buyer":     buyer,
		}).Error("failed to validator.SetSold")
	}
}
