package auction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zuno-xyz/goauction/domain"
)

var (
	alice = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bob   = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	carol = domain.Address("0x4a8a536e28b302b2a6b16044cd6a15e0ca9d1e35")
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEscrowPlaceBidPromotion(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	total, demoted, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	req.Nil(demoted, "first bid demotes nobody")
	req.True(total.Equal(dec("1")))
	req.Equal(alice, *l.HighestBidder)
	req.True(l.HighestBidDecimal().Equal(dec("1")))

	total, demoted, err = l.PlaceBid(bob, dec("1.05"), now.Add(time.Minute))
	req.NoError(err)
	req.NotNil(demoted, "outbid demotes the previous highest")
	req.Equal(alice, demoted.Bidder)
	req.True(demoted.Amount.Equal(dec("1")))
	req.True(total.Equal(dec("1.05")))
	req.Equal(bob, *l.HighestBidder)
	req.True(l.PendingRefund(alice).Equal(dec("1")), "demoted stake becomes refundable")
	req.True(l.TotalReceivedDecimal().Equal(dec("2.05")))
	req.True(l.Conserved())
}

func TestEscrowTopUpOwnHighest(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	total, demoted, err := l.PlaceBid(alice, dec("0.5"), now.Add(time.Minute))
	req.NoError(err)
	req.Nil(demoted)
	req.True(total.Equal(dec("1.5")), "top-ups are cumulative")
	req.True(l.HighestBidDecimal().Equal(dec("1.5")))
	req.Equal(2, l.BidCount())
	req.True(l.Conserved())
}

func TestEscrowTopUpReclaimsPromotion(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	_, _, err = l.PlaceBid(bob, dec("2"), now)
	req.NoError(err)

	// alice already has 1 in escrow and 1 pending refund; topping up by
	// 1.5 re-locks her stake and demotes bob
	total, demoted, err := l.PlaceBid(alice, dec("1.5"), now)
	req.NoError(err)
	req.True(total.Equal(dec("2.5")))
	req.NotNil(demoted)
	req.Equal(bob, demoted.Bidder)
	req.True(demoted.Amount.Equal(dec("2")))
	req.Equal(alice, *l.HighestBidder)
	req.True(l.PendingRefund(alice).IsZero(), "promotion re-locks the pending refund")
	req.True(l.PendingRefund(bob).Equal(dec("2")))
	req.True(l.Conserved())
}

func TestEscrowLosingBidStaysRefundable(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	_, _, err := l.PlaceBid(alice, dec("5"), now)
	req.NoError(err)
	total, demoted, err := l.PlaceBid(bob, dec("3"), now)
	req.NoError(err)
	req.Nil(demoted)
	req.True(total.Equal(dec("3")))
	req.Equal(alice, *l.HighestBidder, "non-winning bid leaves the highest unchanged")
	req.True(l.PendingRefund(bob).Equal(dec("3")))
	req.True(l.Conserved())
}

func TestEscrowRejectsNonPositiveBid(t *testing.T) {
	l := NewEscrowLedger("0xabc")
	_, _, err := l.PlaceBid(alice, decimal.Zero, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, _, err = l.PlaceBid(alice, dec("-1"), time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestEscrowRefundLifecycle(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	_, _, err = l.PlaceBid(bob, dec("2"), now)
	req.NoError(err)

	owed, err := l.BeginRefund(alice)
	req.NoError(err)
	req.True(owed.Equal(dec("1")))
	req.True(l.PendingRefund(alice).IsZero(), "refund is zeroed before payment")

	// second withdrawal attempt while the first is in flight
	_, err = l.BeginRefund(alice)
	req.ErrorIs(err, domain.ErrNoPendingRefund)

	// payment failed, the owed amount comes back
	l.RollbackRefund(alice, owed)
	req.True(l.PendingRefund(alice).Equal(dec("1")))
	req.True(l.Conserved())

	owed, err = l.BeginRefund(alice)
	req.NoError(err)
	l.CommitRefund(alice, now.Add(time.Minute))
	req.True(l.PendingRefund(alice).IsZero())
	req.True(l.Conserved())

	_, err = l.BeginRefund(carol)
	req.ErrorIs(err, domain.ErrNoPendingRefund, "never-bid address has nothing to withdraw")
}

func TestEscrowConsumeHighest(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	_, _, err = l.PlaceBid(bob, dec("2"), now)
	req.NoError(err)

	winner, amount, err := l.ConsumeHighest(now.Add(time.Hour))
	req.NoError(err)
	req.Equal(bob, winner)
	req.True(amount.Equal(dec("2")))
	req.Nil(l.HighestBidder)
	req.True(l.HighestBidDecimal().IsZero())
	req.True(l.PendingRefund(alice).Equal(dec("1")), "losing refund survives settlement")
	req.True(l.Conserved())

	_, _, err = l.ConsumeHighest(now)
	req.Error(err, "the winning escrow releases once")
}

func TestEscrowDemoteHighest(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	req.Nil(l.DemoteHighest(now), "nothing to demote on an empty ledger")

	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)

	due := l.DemoteHighest(now.Add(time.Hour))
	req.NotNil(due)
	req.Equal(alice, due.Bidder)
	req.True(due.Amount.Equal(dec("1")))
	req.Nil(l.HighestBidder)
	req.True(l.PendingRefund(alice).Equal(dec("1")))
	req.True(l.Conserved())
}

func TestEscrowAllRefunds(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	_, _, err = l.PlaceBid(bob, dec("2"), now.Add(time.Second))
	req.NoError(err)
	_, _, err = l.PlaceBid(carol, dec("3"), now.Add(2*time.Second))
	req.NoError(err)
	l.DemoteHighest(now.Add(time.Minute))

	all := l.AllRefunds(nil)
	req.Len(all, 3)
	req.Equal(alice, all[0].Bidder, "refunds follow first-bid order")
	req.Equal(bob, all[1].Bidder)
	req.Equal(carol, all[2].Bidder)

	excluded := l.AllRefunds(&bob)
	req.Len(excluded, 2)
	for _, r := range excluded {
		req.False(r.Bidder.Equals(bob))
	}
}

func TestEscrowReset(t *testing.T) {
	req := require.New(t)
	now := time.Now()

	l := NewEscrowLedger("0xabc")
	_, _, err := l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	req.ErrorIs(l.Reset(now), domain.ErrAuctionHasBids, "live highest bid blocks reset")

	winner, amount, err := l.ConsumeHighest(now)
	req.NoError(err)
	req.Equal(alice, winner)
	req.True(amount.Equal(dec("1")))
	req.NoError(l.Reset(now), "reset is legal once no funds are at risk")

	l = NewEscrowLedger("0xdef")
	_, _, err = l.PlaceBid(alice, dec("1"), now)
	req.NoError(err)
	_, _, err = l.PlaceBid(bob, dec("2"), now)
	req.NoError(err)
	_, _, err = l.ConsumeHighest(now)
	req.NoError(err)
	req.ErrorIs(l.Reset(now), domain.ErrAuctionHasBids, "outstanding refunds block reset")
}

func TestEscrowConservedAcrossRandomishSequence(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	l := NewEscrowLedger("0xabc")

	bidders := []domain.Address{alice, bob, carol}
	amounts := []string{"1", "2", "0.5", "3", "1.25", "4", "0.75"}
	for i, a := range amounts {
		_, _, err := l.PlaceBid(bidders[i%len(bidders)], dec(a), now.Add(time.Duration(i)*time.Second))
		req.NoError(err)
		req.True(l.Conserved(), "invariant broken after bid %d", i)
	}

	for _, b := range bidders {
		if l.HighestBidder != nil && l.HighestBidder.Equals(b) {
			continue
		}
		if owed, err := l.BeginRefund(b); err == nil {
			l.CommitRefund(b, now)
			req.True(owed.IsPositive())
		}
		req.True(l.Conserved())
	}
}
