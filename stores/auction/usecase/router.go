package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/keylock"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/base/metrics"
	"github.com/zuno-xyz/goauction/base/validator"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
)

type AuctionUseCaseCfg struct {
	AuctionRepo  auction.Repo
	EscrowRepo   auction.EscrowRepo
	ConfigRepo   auction.ConfigRepo
	ActivityRepo auction.ActivityRepo
	Tx           auction.TxRunner
	Transferrer  domain.AssetTransferrer
	Distributor  domain.PaymentDistributor
	Validator    domain.AvailabilityValidator
	Royalties    domain.RoyaltyRegistry

	// NowFn overrides the clock, for tests. Defaults to time.Now.
	NowFn func() time.Time
}

// router is the single entry point over both auction formats. It forwards
// the true caller identity to the format engines, checks the global pause
// on every mutating verb, and serializes per-auction mutations with a
// keyed lock.
type router struct {
	*engine
	ascending *ascendingEngine
	decay     *decayEngine
}

func New(cfg *AuctionUseCaseCfg) (auction.UseCase, auction.AdminUseCase) {
	nowFn := cfg.NowFn
	if nowFn == nil {
		nowFn = time.Now
	}
	e := &engine{
		auctions:    cfg.AuctionRepo,
		escrows:     cfg.EscrowRepo,
		configs:     cfg.ConfigRepo,
		activities:  cfg.ActivityRepo,
		tx:          cfg.Tx,
		transferrer: cfg.Transferrer,
		distributor: cfg.Distributor,
		validator:   cfg.Validator,
		royalties:   cfg.Royalties,
		locks:       keylock.New(),
		met:         metrics.New("auction"),
		nowFn:       nowFn,
	}
	r := &router{
		engine:    e,
		ascending: &ascendingEngine{e},
		decay:     &decayEngine{e},
	}
	return r, r
}

func (r *router) requireUnpaused(c ctx.Ctx) error {
	cfg, err := r.config(c)
	if err != nil {
		return err
	}
	if cfg.Paused {
		return domain.ErrAuctionPaused
	}
	return nil
}

func (r *router) Create(c ctx.Ctx, caller domain.Address, params auction.CreateParams) (*auction.Auction, error) {
	if err := r.requireUnpaused(c); err != nil {
		return nil, err
	}

	key := params.Asset.LowerCase().Key()
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	return r.create(c, caller, params)
}

// withAuction runs fn with the auction loaded under its per-auction lock.
func (r *router) withAuction(c ctx.Ctx, id auction.Id, fn func(*auction.Auction) error) error {
	r.locks.Lock(string(id))
	defer r.locks.Unlock(string(id))

	a, err := r.auctions.FindOne(c, id)
	if err != nil {
		return err
	}
	return fn(a)
}

func (r *router) PlaceBid(c ctx.Ctx, caller domain.Address, id auction.Id, amount string) error {
	if err := r.requireUnpaused(c); err != nil {
		return err
	}
	return r.withAuction(c, id, func(a *auction.Auction) error {
		switch a.Format {
		case auction.FormatAscending:
			return r.ascending.placeBid(c, caller, a, amount)
		case auction.FormatDecay:
			return domain.ErrUnsupportedAuctionFormat
		default:
			return domain.ErrUnsupportedAuctionFormat
		}
	})
}

func (r *router) WithdrawBid(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	if err := r.requireUnpaused(c); err != nil {
		return err
	}
	return r.withAuction(c, id, func(a *auction.Auction) error {
		switch a.Format {
		case auction.FormatAscending:
			return r.ascending.withdrawBid(c, caller, a)
		default:
			return domain.ErrUnsupportedAuctionFormat
		}
	})
}

func (r *router) BuyNow(c ctx.Ctx, caller domain.Address, id auction.Id, payment string) error {
	if err := r.requireUnpaused(c); err != nil {
		return err
	}
	return r.withAuction(c, id, func(a *auction.Auction) error {
		switch a.Format {
		case auction.FormatDecay:
			return r.decay.buyNow(c, caller, a, payment)
		default:
			return domain.ErrUnsupportedAuctionFormat
		}
	})
}

func (r *router) Settle(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	if err := r.requireUnpaused(c); err != nil {
		return err
	}
	return r.withAuction(c, id, func(a *auction.Auction) error {
		switch a.Format {
		case auction.FormatAscending:
			return r.ascending.settle(c, caller, a)
		case auction.FormatDecay:
			return r.decay.settle(c, caller, a)
		default:
			return domain.ErrUnsupportedAuctionFormat
		}
	})
}

func (r *router) Cancel(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	if err := r.requireUnpaused(c); err != nil {
		return err
	}
	return r.withAuction(c, id, func(a *auction.Auction) error {
		switch a.Format {
		case auction.FormatAscending:
			return r.ascending.cancel(c, caller, a)
		case auction.FormatDecay:
			return r.decay.cancel(c, caller, a)
		default:
			return domain.ErrUnsupportedAuctionFormat
		}
	})
}

func (r *router) GetAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	return r.auctions.FindOne(c, id)
}

func (r *router) CurrentPrice(c ctx.Ctx, id auction.Id) (decimal.Decimal, error) {
	a, err := r.auctions.FindOne(c, id)
	if err != nil {
		return decimal.Zero, err
	}
	switch a.Format {
	case auction.FormatAscending:
		return r.ascending.currentPrice(c, a)
	case auction.FormatDecay:
		return r.decay.currentPrice(a), nil
	default:
		return decimal.Zero, domain.ErrUnsupportedAuctionFormat
	}
}

func (r *router) PriceAt(c ctx.Ctx, id auction.Id, at time.Time) (decimal.Decimal, error) {
	a, err := r.auctions.FindOne(c, id)
	if err != nil {
		return decimal.Zero, err
	}
	if a.Format != auction.FormatDecay {
		return decimal.Zero, domain.ErrUnsupportedAuctionFormat
	}
	return r.decay.priceAt(a, at), nil
}

func (r *router) AllAuctions(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return r.auctions.FindAll(c, opts...)
}

func (r *router) AuctionsBySeller(c ctx.Ctx, seller domain.Address) ([]*auction.Auction, error) {
	return r.auctions.FindAll(c, auction.WithSeller(seller))
}

func (r *router) AuctionsByAsset(c ctx.Ctx, asset domain.AssetRef) ([]*auction.Auction, error) {
	return r.auctions.FindAll(c, auction.WithAsset(asset.LowerCase()))
}

func (r *router) IsActive(c ctx.Ctx, id auction.Id) (bool, error) {
	a, err := r.auctions.FindOne(c, id)
	if err != nil {
		return false, err
	}
	return a.Status == auction.StatusActive && !a.EndedAt(r.nowFn()), nil
}

func (r *router) Activities(c ctx.Ctx, id auction.Id, limit int32) ([]*auction.Activity, error) {
	return r.activities.FindAll(c, id, limit)
}

func (r *router) PendingRefund(c ctx.Ctx, id auction.Id, bidder domain.Address) (decimal.Decimal, error) {
	ledger, err := r.escrows.FindOne(c, id)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.PendingRefund(bidder), nil
}

// admin surface

func (r *router) updateConfig(c ctx.Ctx, mutate func(*auction.Config)) error {
	cfg, err := r.config(c)
	if err != nil {
		return err
	}
	mutate(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.UpdatedAt = r.nowFn()
	return r.configs.Save(c, cfg)
}

func (r *router) Pause(c ctx.Ctx) error {
	return r.updateConfig(c, func(cfg *auction.Config) { cfg.Paused = true })
}

func (r *router) Unpause(c ctx.Ctx) error {
	return r.updateConfig(c, func(cfg *auction.Config) { cfg.Paused = false })
}

func (r *router) SetFeeBps(c ctx.Ctx, feeBps int64) error {
	return r.updateConfig(c, func(cfg *auction.Config) { cfg.FeeBps = feeBps })
}

func (r *router) SetFeeRecipient(c ctx.Ctx, recipient domain.Address) error {
	if !validator.IsValidAddress(string(recipient)) {
		return domain.ErrInvalidAddress
	}
	return r.updateConfig(c, func(cfg *auction.Config) { cfg.FeeRecipient = recipient.ToLower() })
}

func (r *router) SetBidIncrementBps(c ctx.Ctx, incrementBps int64) error {
	return r.updateConfig(c, func(cfg *auction.Config) { cfg.BidIncrementBps = incrementBps })
}

func (r *router) SetDurationBounds(c ctx.Ctx, min, max time.Duration) error {
	return r.updateConfig(c, func(cfg *auction.Config) {
		cfg.MinDuration = min
		cfg.MaxDuration = max
	})
}

func (r *router) SetExtension(c ctx.Ctx, threshold, extension time.Duration) error {
	if threshold <= 0 || extension <= 0 {
		return domain.ErrInvalidDuration
	}
	return r.updateConfig(c, func(cfg *auction.Config) {
		cfg.ExtensionThreshold = threshold
		cfg.ExtensionDuration = extension
	})
}

func (r *router) GetConfig(c ctx.Ctx) (*auction.Config, error) {
	return r.config(c)
}

func (r *router) SetValidator(c ctx.Ctx, v domain.AvailabilityValidator) error {
	if v == nil {
		return domain.ErrValidatorNotSet
	}
	r.setValidator(v)
	c.Info("availability validator replaced")
	return nil
}

func (r *router) ResetAssetStatus(c ctx.Ctx, asset domain.AssetRef, owner domain.Address) error {
	v, err := r.availability()
	if err != nil {
		return err
	}
	asset = asset.LowerCase()
	if err := v.SetAvailable(c, asset, owner); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"asset": asset.Key(),
		}).Error("failed to validator.SetAvailable")
		return err
	}
	return nil
}

func (r *router) RefundAll(c ctx.Ctx, id auction.Id, exclude *domain.Address) error {
	r.locks.Lock(string(id))
	defer r.locks.Unlock(string(id))

	ledger, err := r.escrows.FindOne(c, id)
	if err != nil {
		return err
	}

	var firstErr error
	for _, due := range ledger.AllRefunds(exclude) {
		if _, err := r.refund(c, ledger, due.Bidder); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
				"bidder":    due.Bidder,
			}).Error("failed to refund bidder")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
