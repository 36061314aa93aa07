package domain

import (
	"github.com/shopspring/decimal"
	"github.com/zuno-xyz/goauction/base/ctx"
)

// AssetTransferrer moves auctioned assets between owners. Transfer semantics
// are uniform across unique and semi-fungible assets.
type AssetTransferrer interface {
	Transfer(c ctx.Ctx, asset AssetRef, units int64, from, to Address) error
}

// PaymentDistributor issues a single outbound payout. Implementations signal
// insufficient balance and transfer failure uniformly through payment errors
// (ErrTransferFailed wrapping the cause).
type PaymentDistributor interface {
	Payout(c ctx.Ctx, recipient Address, amount decimal.Decimal) error
}

// AvailabilityValidator tracks whether an asset may be auctioned, so the same
// asset cannot be listed elsewhere and auctioned at once.
type AvailabilityValidator interface {
	IsAvailable(c ctx.Ctx, asset AssetRef, owner Address) (bool, error)
	SetInAuction(c ctx.Ctx, asset AssetRef, owner Address) error
	SetAvailable(c ctx.Ctx, asset AssetRef, owner Address) error
	SetSold(c ctx.Ctx, asset AssetRef, from, to Address) error
}

// RoyaltyRegistry resolves the royalty recipient and rate for an asset.
type RoyaltyRegistry interface {
	RoyaltyInfo(c ctx.Ctx, asset AssetRef) (recipient Address, bps int64, err error)
}
