package auction

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/zuno-xyz/goauction/domain"
)

// BidEntry records one bidder's cumulative escrowed contribution.
type BidEntry struct {
	Bidder  domain.Address `json:"bidder" bson:"bidder"`
	Amount  string         `json:"amount" bson:"amount"`
	BidTime time.Time      `json:"bidTime" bson:"bidTime"`
	Active  bool           `json:"active" bson:"active"`
}

// RefundDue names a bidder owed a refund and the amount owed.
type RefundDue struct {
	Bidder domain.Address
	Amount decimal.Decimal
}

// EscrowLedger is the per-auction bid and refund bookkeeping. It is a pure
// data structure: callers mutate it under the auction's lock and persist it
// through an EscrowRepo. Funds never cross ledgers.
//
// Conservation invariant, maintained by construction:
//
//	sum(pendingRefunds) + highestBid <= totalReceived
type EscrowLedger struct {
	AuctionId      Id                `json:"auctionId" bson:"auctionId"`
	Bids           []BidEntry        `json:"bids" bson:"bids"`
	HighestBidder  *domain.Address   `json:"highestBidder,omitempty" bson:"highestBidder,omitempty"`
	HighestBid     string            `json:"highestBid" bson:"highestBid"`
	PendingRefunds map[string]string `json:"pendingRefunds" bson:"pendingRefunds"`
	TotalReceived  string            `json:"totalReceived" bson:"totalReceived"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}

func NewEscrowLedger(id Id) *EscrowLedger {
	return &EscrowLedger{
		AuctionId:      id,
		Bids:           []BidEntry{},
		HighestBid:     "0",
		PendingRefunds: map[string]string{},
		TotalReceived:  "0",
	}
}

func (l *EscrowLedger) HighestBidDecimal() decimal.Decimal {
	if l.HighestBid == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(l.HighestBid)
}

func (l *EscrowLedger) TotalReceivedDecimal() decimal.Decimal {
	if l.TotalReceived == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(l.TotalReceived)
}

// PendingRefund returns the refund currently owed to bidder, zero if none.
func (l *EscrowLedger) PendingRefund(bidder domain.Address) decimal.Decimal {
	amt, ok := l.PendingRefunds[bidder.ToLowerStr()]
	if !ok {
		return decimal.Zero
	}
	return decimal.RequireFromString(amt)
}

// Bidders returns every bidder that ever placed a bid, in first-bid order.
func (l *EscrowLedger) Bidders() []domain.Address {
	res := []domain.Address{}
	for _, b := range l.Bids {
		res = append(res, b.Bidder)
	}
	return res
}

// BidCount returns the number of bid events received, counting top-ups.
func (l *EscrowLedger) BidCount() int {
	return len(l.Bids)
}

// cumulative escrowed amount of a bidder across bids and top-ups
func (l *EscrowLedger) cumulativeOf(bidder domain.Address) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range l.Bids {
		if b.Active && b.Bidder.Equals(bidder) {
			sum = sum.Add(decimal.RequireFromString(b.Amount))
		}
	}
	return sum
}

// PlaceBid records amount from bidder. A bidder with an existing active bid
// tops up: the amounts are cumulative. If the resulting total beats the
// current highest, the bidder is promoted: their own pending refund from a
// prior demotion is re-locked, and the previous highest bidder's total is
// scheduled as a pending refund, returned as the demoted RefundDue. A total
// that does not beat the highest stays refundable immediately.
func (l *EscrowLedger) PlaceBid(bidder domain.Address, amount decimal.Decimal, at time.Time) (total decimal.Decimal, demoted *RefundDue, err error) {
	if !amount.IsPositive() {
		return decimal.Zero, nil, domain.ErrInvalidAmount
	}

	l.Bids = append(l.Bids, BidEntry{
		Bidder:  bidder.ToLower(),
		Amount:  amount.String(),
		BidTime: at,
		Active:  true,
	})
	l.TotalReceived = l.TotalReceivedDecimal().Add(amount).String()
	l.UpdatedAt = at

	total = l.cumulativeOf(bidder)

	if l.HighestBidder != nil && l.HighestBidder.Equals(bidder) {
		// topping up own highest bid, no demotion
		l.HighestBid = total.String()
		return total, nil, nil
	}

	if total.GreaterThan(l.HighestBidDecimal()) {
		// promotion re-locks the bidder's own demotion refund
		delete(l.PendingRefunds, bidder.ToLowerStr())

		if l.HighestBidder != nil {
			prev := *l.HighestBidder
			prevAmount := l.HighestBidDecimal()
			l.PendingRefunds[prev.ToLowerStr()] = prevAmount.String()
			demoted = &RefundDue{Bidder: prev, Amount: prevAmount}
		}

		b := bidder.ToLower()
		l.HighestBidder = &b
		l.HighestBid = total.String()
		return total, demoted, nil
	}

	// not promoted, the bidder's whole stake stays refundable
	l.PendingRefunds[bidder.ToLowerStr()] = total.String()
	return total, nil, nil
}

// BeginRefund reads and zeroes the pending refund owed to bidder. Zeroing
// before payment blocks re-entrant double payout; a failed payment must be
// followed by RollbackRefund to restore the entry.
func (l *EscrowLedger) BeginRefund(bidder domain.Address) (decimal.Decimal, error) {
	key := bidder.ToLowerStr()
	amt, ok := l.PendingRefunds[key]
	if !ok {
		return decimal.Zero, domain.ErrNoPendingRefund
	}
	owed := decimal.RequireFromString(amt)
	if !owed.IsPositive() {
		return decimal.Zero, domain.ErrNoPendingRefund
	}
	delete(l.PendingRefunds, key)
	return owed, nil
}

// CommitRefund finalizes a paid-out refund by deactivating the bidder's
// escrow entries.
func (l *EscrowLedger) CommitRefund(bidder domain.Address, at time.Time) {
	for i := range l.Bids {
		if l.Bids[i].Bidder.Equals(bidder) {
			l.Bids[i].Active = false
		}
	}
	l.UpdatedAt = at
}

// RollbackRefund restores a pending refund after a failed payment so the
// bidder can retry later. The owed amount is never discarded.
func (l *EscrowLedger) RollbackRefund(bidder domain.Address, amount decimal.Decimal) {
	l.PendingRefunds[bidder.ToLowerStr()] = amount.String()
}

// AllRefunds snapshots every pending refund except the excluded bidder.
// Used by the recovery path that refunds everyone at once.
func (l *EscrowLedger) AllRefunds(exclude *domain.Address) []RefundDue {
	res := []RefundDue{}
	for _, b := range l.Bids {
		key := b.Bidder.ToLowerStr()
		amt, ok := l.PendingRefunds[key]
		if !ok {
			continue
		}
		if exclude != nil && exclude.Equals(b.Bidder) {
			continue
		}
		// bids preserve first-seen order; skip duplicates from top-ups
		found := false
		for _, r := range res {
			if r.Bidder.Equals(b.Bidder) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		res = append(res, RefundDue{Bidder: b.Bidder, Amount: decimal.RequireFromString(amt)})
	}
	return res
}

// ConsumeHighest releases the winning escrow for settlement distribution,
// clearing the highest pointer and deactivating the winner's entries.
func (l *EscrowLedger) ConsumeHighest(at time.Time) (domain.Address, decimal.Decimal, error) {
	if l.HighestBidder == nil {
		return "", decimal.Zero, xerrors.Errorf("consume highest: %w", domain.ErrNoPendingRefund)
	}
	winner := *l.HighestBidder
	amount := l.HighestBidDecimal()
	for i := range l.Bids {
		if l.Bids[i].Bidder.Equals(winner) {
			l.Bids[i].Active = false
		}
	}
	l.HighestBidder = nil
	l.HighestBid = "0"
	l.UpdatedAt = at
	return winner, amount, nil
}

// DemoteHighest converts the locked highest bid into a pending refund.
// Used when an auction ends below its reserve price so the top bidder's
// stake is refundable instead of silently retained.
func (l *EscrowLedger) DemoteHighest(at time.Time) *RefundDue {
	if l.HighestBidder == nil {
		return nil
	}
	bidder := *l.HighestBidder
	amount := l.HighestBidDecimal()
	l.PendingRefunds[bidder.ToLowerStr()] = amount.String()
	l.HighestBidder = nil
	l.HighestBid = "0"
	l.UpdatedAt = at
	return &RefundDue{Bidder: bidder, Amount: amount}
}

// Reset marks all bids inactive and clears the highest pointer. Only legal
// when no bidder funds are at risk.
func (l *EscrowLedger) Reset(at time.Time) error {
	if l.HighestBidder != nil || len(l.PendingRefunds) > 0 {
		return domain.ErrAuctionHasBids
	}
	for i := range l.Bids {
		l.Bids[i].Active = false
	}
	l.UpdatedAt = at
	return nil
}

// Conserved reports whether the escrow conservation invariant holds.
func (l *EscrowLedger) Conserved() bool {
	sum := l.HighestBidDecimal()
	for _, amt := range l.PendingRefunds {
		sum = sum.Add(decimal.RequireFromString(amt))
	}
	return !sum.GreaterThan(l.TotalReceivedDecimal())
}
