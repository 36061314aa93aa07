package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
)

// ascendingEngine implements the competitive-bidding format. Bids are
// escrowed per auction; outbid stakes become pending refunds withdrawn by
// their owners.
type ascendingEngine struct {
	*engine
}

func (e *ascendingEngine) placeBid(c ctx.Ctx, caller domain.Address, a *auction.Auction, amountStr string) error {
	now := e.nowFn()

	if a.Status != auction.StatusActive {
		return domain.ErrAuctionNotActive
	}
	if a.EndedAt(now) {
		return domain.ErrAuctionEnded
	}
	if a.Seller.Equals(caller) {
		return domain.ErrSellerBid
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	cfg, err := e.config(c)
	if err != nil {
		return err
	}

	ledger, err := e.escrows.FindOne(c, a.Id)
	if err != nil {
		return err
	}

	// cumulative stake: a bidder's new bid tops up what they already hold
	stake := ledger.PendingRefund(caller)
	if ledger.HighestBidder != nil && ledger.HighestBidder.Equals(caller) {
		stake = ledger.HighestBidDecimal()
	}
	prospective := stake.Add(amount)

	// the opening bid is measured against the start price; later bids must
	// clear the increment over the standing highest and the reserve
	minimum := a.StartPriceDecimal()
	if ledger.HighestBidder != nil {
		minimum = auction.MinimumBid(ledger.HighestBidDecimal(), cfg.BidIncrementBps, a.ReservePriceDecimal())
	}
	if prospective.LessThan(minimum) {
		return domain.ErrBidTooLow
	}

	total, demoted, err := ledger.PlaceBid(caller, amount, now)
	if err != nil {
		return err
	}

	endTime := auction.ExtendedEndTime(a.EndTime, cfg.ExtensionDuration, cfg.ExtensionThreshold, now)
	extended := endTime.After(a.EndTime)

	if err := e.escrows.Save(c, ledger); err != nil {
		return err
	}

	bidder := caller.ToLower()
	highest := total.String()
	bidCount := ledger.BidCount()
	patch := auction.Patchable{
		HighestBidder: &bidder,
		HighestBid:    &highest,
		BidCount:      &bidCount,
		UpdatedAt:     &now,
	}
	if extended {
		patch.EndTime = &endTime
	}
	if err := e.auctions.Update(c, a.Id, patch); err != nil {
		return err
	}

	if demoted != nil {
		c.WithFields(log.Fields{
			"auctionId": a.Id,
			"bidder":    demoted.Bidder,
			"amount":    demoted.Amount.String(),
		}).Info("bidder outbid, stake refundable")
	}

	e.recordActivity(c, a.Id, auction.ActivityBid, caller, total.String())
	if extended {
		e.recordActivity(c, a.Id, auction.ActivityExtended, caller, "")
	}
	e.met.BumpSum("auction.bid", 1)
	return nil
}

func (e *ascendingEngine) withdrawBid(c ctx.Ctx, caller domain.Address, a *auction.Auction) error {
	ledger, err := e.escrows.FindOne(c, a.Id)
	if err != nil {
		return err
	}

	owed, err := e.refund(c, ledger, caller)
	if err != nil {
		return err
	}

	e.recordActivity(c, a.Id, auction.ActivityWithdrawn, caller, owed.String())
	return nil
}

func (e *ascendingEngine) settle(c ctx.Ctx, caller domain.Address, a *auction.Auction) error {
	now := e.nowFn()

	if a.Status != auction.StatusActive {
		return domain.ErrAuctionFinalized
	}
	if !a.EndedAt(now) {
		return domain.ErrAuctionNotEnded
	}

	cfg, err := e.config(c)
	if err != nil {
		return err
	}

	ledger, err := e.escrows.FindOne(c, a.Id)
	if err != nil {
		return err
	}

	reserveMet := ledger.HighestBidder != nil &&
		(!a.HasReserve() || !ledger.HighestBidDecimal().LessThan(a.ReservePriceDecimal()))

	if !reserveMet {
		// no winner: the locked highest stake, if any, becomes refundable
		if due := ledger.DemoteHighest(now); due != nil {
			c.WithFields(log.Fields{
				"auctionId": a.Id,
				"bidder":    due.Bidder,
				"amount":    due.Amount.String(),
			}).Info("reserve not met, highest bid refundable")
			if err := e.escrows.Save(c, ledger); err != nil {
				return err
			}
		}

		ended := auction.StatusEnded
		if err := e.auctions.Update(c, a.Id, auction.Patchable{Status: &ended, UpdatedAt: &now}); err != nil {
			return err
		}
		e.notifyAvailable(c, a)
		e.recordActivity(c, a.Id, auction.ActivityEnded, caller, "")
		e.met.BumpSum("auction.ended", 1, "format", string(a.Format))
		return nil
	}

	winner, finalPrice, err := ledger.ConsumeHighest(now)
	if err != nil {
		return err
	}

	if err := e.transferrer.Transfer(c, a.Asset, a.Asset.Units, a.Seller, winner); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"winner":    winner,
		}).Error("failed to transferrer.Transfer")
		return domain.ErrTransferFailed
	}

	if err := e.escrows.Save(c, ledger); err != nil {
		return err
	}
	settled := auction.StatusSettled
	if err := e.auctions.Update(c, a.Id, auction.Patchable{Status: &settled, UpdatedAt: &now}); err != nil {
		return err
	}

	payErr := e.distributeProceeds(c, a, finalPrice, cfg)

	e.notifySold(c, a, winner)
	e.recordActivity(c, a.Id, auction.ActivitySettled, winner, finalPrice.String())
	e.met.BumpSum("auction.settled", 1, "format", string(a.Format))
	return payErr
}

func (e *ascendingEngine) cancel(c ctx.Ctx, caller domain.Address, a *auction.Auction) error {
	now := e.nowFn()

	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if a.Status != auction.StatusActive {
		return domain.ErrAuctionFinalized
	}

	ledger, err := e.escrows.FindOne(c, a.Id)
	if err != nil {
		return err
	}
	if err := ledger.Reset(now); err != nil {
		return err
	}
	if err := e.escrows.Save(c, ledger); err != nil {
		return err
	}

	cancelled := auction.StatusCancelled
	if err := e.auctions.Update(c, a.Id, auction.Patchable{Status: &cancelled, UpdatedAt: &now}); err != nil {
		return err
	}

	e.notifyAvailable(c, a)
	e.recordActivity(c, a.Id, auction.ActivityCancelled, caller, "")
	e.met.BumpSum("auction.cancelled", 1, "format", string(a.Format))
	return nil
}

// currentPrice quotes the lowest acceptable next bid.
func (e *ascendingEngine) currentPrice(c ctx.Ctx, a *auction.Auction) (decimal.Decimal, error) {
	if a.HighestBidder == nil {
		return a.StartPriceDecimal(), nil
	}
	cfg, err := e.config(c)
	if err != nil {
		return decimal.Zero, err
	}
	return auction.MinimumBid(a.HighestBidDecimal(), cfg.BidIncrementBps, a.ReservePriceDecimal()), nil
}
