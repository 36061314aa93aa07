package auction

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/zuno-xyz/goauction/domain"
)

var bpsDenominator = decimal.NewFromInt(domain.BpsDenominator)

// reserve sanity bound for ascending auctions: reserve may not exceed
// ten times the start price
var reserveSanityMultiplier = decimal.NewFromInt(10)

// DeriveId derives a deterministic auction id from the creation event.
// Creation time at nanosecond resolution keeps ids unique per event even
// for repeated listings of the same asset by the same seller.
func DeriveId(asset domain.AssetRef, seller domain.Address, createdAt time.Time) Id {
	preimage := fmt.Sprintf("%d:%s:%s:%d:%s:%d",
		asset.ChainId, asset.Contract.ToLowerStr(), asset.TokenId, asset.Units,
		seller.ToLowerStr(), createdAt.UnixNano())
	return Id(hexutil.Encode(crypto.Keccak256([]byte(preimage))))
}

// ValidateCreation checks seller-supplied creation parameters against the
// current config. It parses and returns the start and reserve prices so
// callers do not re-parse.
func ValidateCreation(params CreateParams, cfg *Config) (startPrice, reservePrice decimal.Decimal, err error) {
	if params.Duration <= 0 || params.Duration < cfg.MinDuration || params.Duration > cfg.MaxDuration {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidDuration
	}

	startPrice, err = decimal.NewFromString(params.StartPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, xerrors.Errorf("parse start price %q: %w", params.StartPrice, domain.ErrInvalidAmount)
	}
	if !startPrice.IsPositive() {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidStartPrice
	}

	reservePrice = decimal.Zero
	if params.ReservePrice != "" {
		reservePrice, err = decimal.NewFromString(params.ReservePrice)
		if err != nil {
			return decimal.Zero, decimal.Zero, xerrors.Errorf("parse reserve price %q: %w", params.ReservePrice, domain.ErrInvalidAmount)
		}
		if reservePrice.IsNegative() {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidReservePrice
		}
	}

	switch params.Format {
	case FormatAscending:
		if cfg.BidIncrementBps <= 0 {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidBidIncrement
		}
		if reservePrice.IsPositive() && reservePrice.LessThan(startPrice) {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidReservePrice
		}
		if reservePrice.GreaterThan(startPrice.Mul(reserveSanityMultiplier)) {
			return decimal.Zero, decimal.Zero, domain.ErrReservePriceTooHigh
		}
	case FormatDecay:
		if params.DropRateBps < cfg.MinDropRateBps || params.DropRateBps > cfg.MaxDropRateBps {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidDropRate
		}
		if reservePrice.GreaterThan(startPrice) {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidReservePrice
		}
	default:
		return decimal.Zero, decimal.Zero, domain.ErrUnsupportedAuctionFormat
	}

	return startPrice, reservePrice, nil
}

// MinimumBid returns the lowest acceptable next bid given the current
// highest bid: max(highest + highest*increment, reserve). The first bid of
// an auction is keyed to the start price instead and must not go through
// this function, otherwise a reserve above the start price could never see
// a first bid at all.
func MinimumBid(highestBid decimal.Decimal, incrementBps int64, reservePrice decimal.Decimal) decimal.Decimal {
	min := highestBid.Add(highestBid.Mul(decimal.NewFromInt(incrementBps)).Div(bpsDenominator))
	if reservePrice.GreaterThan(min) {
		return reservePrice
	}
	return min
}

// ExtendedEndTime applies the anti-snipe rule: a qualifying call inside the
// threshold window pushes the end time back by extension. Repeated
// qualifying bids extend again without cap.
func ExtendedEndTime(endTime time.Time, extension, threshold time.Duration, now time.Time) time.Time {
	if now.Before(endTime) && endTime.Sub(now) <= threshold {
		return endTime.Add(extension)
	}
	return endTime
}

// DecayPriceAt computes the descending-price quote at time t:
// max(reserve, start - start*rate*hoursElapsed), floored at zero when no
// reserve is set. For t before the start the price is the start price.
func DecayPriceAt(startPrice, reservePrice decimal.Decimal, dropRateBps int64, startTime time.Time, t time.Time) decimal.Decimal {
	if !t.After(startTime) {
		return startPrice
	}
	hours := decimal.NewFromFloat(t.Sub(startTime).Hours())
	drop := startPrice.Mul(decimal.NewFromInt(dropRateBps)).Div(bpsDenominator).Mul(hours)
	price := startPrice.Sub(drop)
	if price.LessThan(reservePrice) {
		price = reservePrice
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	return price
}

// PaymentSplit distributes a final price into marketplace fee, royalty and
// seller proceeds. The three parts always sum to exactly the final price.
func PaymentSplit(finalPrice decimal.Decimal, feeBps, royaltyBps int64) (fee, royalty, seller decimal.Decimal, err error) {
	fee = finalPrice.Mul(decimal.NewFromInt(feeBps)).Div(bpsDenominator)
	royalty = finalPrice.Mul(decimal.NewFromInt(royaltyBps)).Div(bpsDenominator)
	if fee.Add(royalty).GreaterThan(finalPrice) {
		return decimal.Zero, decimal.Zero, decimal.Zero, domain.ErrFeeExceedsPrice
	}
	seller = finalPrice.Sub(fee).Sub(royalty)
	return fee, royalty, seller, nil
}
