package domain

import "errors"

// Errors surface synchronously to callers and are never retried internally.
// They are grouped by failure class; delivery code maps each group to a
// status code via the Is* helpers below.
var (
	// validation errors, rejected before any state is touched
	ErrInvalidDuration     = errors.New("auction duration out of bounds")
	ErrInvalidStartPrice   = errors.New("start price must be positive")
	ErrInvalidReservePrice = errors.New("reserve price below start price")
	ErrReservePriceTooHigh = errors.New("reserve price exceeds sanity bound")
	ErrInvalidBidIncrement = errors.New("bid increment must be positive")
	ErrInvalidDropRate     = errors.New("price drop rate out of bounds")
	ErrInvalidAmount       = errors.New("invalid amount format")
	ErrInvalidFeeRate      = errors.New("fee rate out of bounds")
	ErrInvalidAddress      = errors.New("invalid address")

	// state errors, the auction exists but is in the wrong phase
	ErrAuctionNotActive         = errors.New("auction is not active")
	ErrAuctionEnded             = errors.New("auction already ended")
	ErrAuctionNotEnded          = errors.New("auction has not ended yet")
	ErrAuctionFinalized         = errors.New("auction already settled or cancelled")
	ErrAuctionHasBids           = errors.New("auction already received bids")
	ErrAuctionSold              = errors.New("auction asset already sold")
	ErrAuctionPaused            = errors.New("auction operations are paused")
	ErrUnsupportedAuctionFormat = errors.New("operation unsupported for this auction format")
	ErrBidTooLow                = errors.New("bid below minimum bid")

	// authorization errors
	ErrNotSeller = errors.New("caller is not the seller")
	ErrSellerBid = errors.New("seller cannot bid on own auction")

	// payment errors
	ErrInsufficientPayment = errors.New("payment below current price")
	ErrTransferFailed      = errors.New("transfer failed")
	ErrNoPendingRefund     = errors.New("no pending refund for bidder")
	ErrFeeExceedsPrice     = errors.New("fee and royalty exceed final price")

	// not found errors
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrAssetNotAvailable  = errors.New("asset not available for auction")
	ErrConfigNotFound     = errors.New("auction config not found")
	ErrValidatorNotSet    = errors.New("availability validator not set")
	ErrActivityNotFound   = errors.New("auction activity not found")
	ErrEscrowLedgerGone   = errors.New("escrow ledger not found")
	ErrRoyaltyLookupError = errors.New("royalty lookup failed")
)

var validationErrors = []error{
	ErrInvalidDuration,
	ErrInvalidStartPrice,
	ErrInvalidReservePrice,
	ErrReservePriceTooHigh,
	ErrInvalidBidIncrement,
	ErrInvalidDropRate,
	ErrInvalidAmount,
	ErrInvalidFeeRate,
	ErrInvalidAddress,
}

var stateErrors = []error{
	ErrAuctionNotActive,
	ErrAuctionEnded,
	ErrAuctionNotEnded,
	ErrAuctionFinalized,
	ErrAuctionHasBids,
	ErrAuctionSold,
	ErrAuctionPaused,
	ErrUnsupportedAuctionFormat,
	ErrBidTooLow,
}

var authorizationErrors = []error{
	ErrNotSeller,
	ErrSellerBid,
}

var paymentErrors = []error{
	ErrInsufficientPayment,
	ErrTransferFailed,
	ErrNoPendingRefund,
	ErrFeeExceedsPrice,
}

func isAny(err error, group []error) bool {
	for _, e := range group {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func IsValidationError(err error) bool {
	return isAny(err, validationErrors)
}

func IsStateError(err error) bool {
	return isAny(err, stateErrors)
}

func IsAuthorizationError(err error) bool {
	return isAny(err, authorizationErrors)
}

func IsPaymentError(err error) bool {
	return isAny(err, paymentErrors)
}
