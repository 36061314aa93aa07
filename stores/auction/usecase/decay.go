package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
)

// decayEngine implements the descending-price instant-purchase format.
// There is no competitive bidding: the first buyer who covers the current
// price wins, and the purchase settles immediately.
type decayEngine struct {
	*engine
}

func (e *decayEngine) currentPrice(a *auction.Auction) decimal.Decimal {
	return e.priceAt(a, e.nowFn())
}

func (e *decayEngine) priceAt(a *auction.Auction, at time.Time) decimal.Decimal {
	return auction.DecayPriceAt(
		a.StartPriceDecimal(),
		a.ReservePriceDecimal(),
		a.DropRateBps,
		a.StartTime,
		at,
	)
}

func (e *decayEngine) buyNow(c ctx.Ctx, caller domain.Address, a *auction.Auction, paymentStr string) error {
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

	payment, err := decimal.NewFromString(paymentStr)
	if err != nil || !payment.IsPositive() {
		return domain.ErrInvalidAmount
	}

	price := e.currentPrice(a)
	if payment.LessThan(price) {
		return domain.ErrInsufficientPayment
	}

	cfg, err := e.config(c)
	if err != nil {
		return err
	}

	if err := e.transferrer.Transfer(c, a.Asset, a.Asset.Units, a.Seller, caller); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"buyer":     caller,
		}).Error("failed to transferrer.Transfer")
		return domain.ErrTransferFailed
	}

	buyer := caller.ToLower()
	priceStr := price.String()
	settled := auction.StatusSettled
	if err := e.auctions.Update(c, a.Id, auction.Patchable{
		Status:        &settled,
		HighestBidder: &buyer,
		HighestBid:    &priceStr,
		UpdatedAt:     &now,
	}); err != nil {
		return err
	}

	payErr := e.distributeProceeds(c, a, price, cfg)

	// overpayment is escrowed and immediately paid back; if the payout
	// fails it stays as a pending refund the admin recovery path can flush
	if excess := payment.Sub(price); excess.IsPositive() {
		if err := e.refundExcess(c, a.Id, caller, excess); err != nil && payErr == nil {
			payErr = err
		}
	}

	e.notifySold(c, a, caller)
	e.recordActivity(c, a.Id, auction.ActivityBought, caller, priceStr)
	e.met.BumpSum("auction.bought", 1)
	return payErr
}

func (e *decayEngine) refundExcess(c ctx.Ctx, id auction.Id, buyer domain.Address, excess decimal.Decimal) error {
	now := e.nowFn()

	ledger, err := e.escrows.FindOne(c, id)
	if err != nil {
		return err
	}
	if _, _, err := ledger.PlaceBid(buyer, excess, now); err != nil {
		return err
	}
	ledger.DemoteHighest(now)

	if _, err := e.refund(c, ledger, buyer); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
			"buyer":     buyer,
			"excess":    excess.String(),
		}).Error("failed to refund overpayment")
		return err
	}
	return nil
}

func (e *decayEngine) settle(c ctx.Ctx, caller domain.Address, a *auction.Auction) error {
	now := e.nowFn()

	if a.Status != auction.StatusActive {
		return domain.ErrAuctionFinalized
	}
	if !a.EndedAt(now) {
		return domain.ErrAuctionNotEnded
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

func (e *decayEngine) cancel(c ctx.Ctx, caller domain.Address, a *auction.Auction) error {
	now := e.nowFn()

	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if a.Status != auction.StatusActive {
		return domain.ErrAuctionFinalized
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
