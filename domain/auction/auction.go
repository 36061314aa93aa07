package auction

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/domain"
)

// Format selects the auction pricing strategy.
type Format string

const (
	// FormatAscending is the competitive-bidding format with escrowed bids.
	FormatAscending Format = "ascending"
	// FormatDecay is the descending-price instant-purchase format.
	FormatDecay Format = "decay"
)

func (f Format) IsValid() bool {
	return f == FormatAscending || f == FormatDecay
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusSettled   Status = "settled"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusSettled || s == StatusCancelled
}

// Id is the keccak-derived auction identifier, hex encoded.
type Id string

func (i Id) String() string {
	return string(i)
}

// Auction is the persisted auction record. Monetary fields are decimal
// strings; a zero reserve price means no reserve.
type Auction struct {
	Id       Id              `json:"id" bson:"id"`
	Asset    domain.AssetRef `json:"asset" bson:"asset"`
	AssetKey string          `json:"assetKey" bson:"assetKey"`
	Seller   domain.Address  `json:"seller" bson:"seller"`
	Format   Format          `json:"format" bson:"format"`

	StartPrice   string    `json:"startPrice" bson:"startPrice"`
	ReservePrice string    `json:"reservePrice" bson:"reservePrice"`
	StartTime    time.Time `json:"startTime" bson:"startTime"`
	EndTime      time.Time `json:"endTime" bson:"endTime"`
	Status       Status    `json:"status" bson:"status"`

	// ascending format fields
	HighestBidder *domain.Address `json:"highestBidder,omitempty" bson:"highestBidder,omitempty"`
	HighestBid    string          `json:"highestBid" bson:"highestBid"`
	BidCount      int             `json:"bidCount" bson:"bidCount"`

	// decay format fields
	DropRateBps int64 `json:"dropRateBps,omitempty" bson:"dropRateBps,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) HasReserve() bool {
	r, err := decimal.NewFromString(a.ReservePrice)
	return err == nil && r.IsPositive()
}

func (a *Auction) StartPriceDecimal() decimal.Decimal {
	return decimal.RequireFromString(a.StartPrice)
}

func (a *Auction) ReservePriceDecimal() decimal.Decimal {
	if a.ReservePrice == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(a.ReservePrice)
}

func (a *Auction) HighestBidDecimal() decimal.Decimal {
	if a.HighestBid == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(a.HighestBid)
}

// EndedAt reports whether the auction's end time has passed at now.
// There are no background timers, expiry is always computed on demand.
func (a *Auction) EndedAt(now time.Time) bool {
	return !now.Before(a.EndTime)
}

// CreateParams are the seller-supplied creation arguments. StartTime and
// EndTime are derived from the creation clock and Duration.
type CreateParams struct {
	Asset        domain.AssetRef `json:"asset" validate:"required"`
	Format       Format          `json:"format" validate:"required"`
	StartPrice   string          `json:"startPrice" validate:"required"`
	ReservePrice string          `json:"reservePrice"`
	Duration     time.Duration   `json:"duration" validate:"required"`
	DropRateBps  int64           `json:"dropRateBps"`
}

type Patchable struct {
	Status        *Status         `bson:"status,omitempty"`
	EndTime       *time.Time      `bson:"endTime,omitempty"`
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	HighestBid    *string         `bson:"highestBid,omitempty"`
	BidCount      *int            `bson:"bidCount,omitempty"`
	UpdatedAt     *time.Time      `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Seller    *domain.Address
	AssetKey  *string
	Status    *Status
	Format    *Format
	EndTimeLT *time.Time
	Offset    *int32
	Limit     *int32
	Sort      *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithAsset(asset domain.AssetRef) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		key := asset.Key()
		options.AssetKey = &key
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithFormat(format Format) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Format = &format
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	FindOne(c ctx.Ctx, id Id) (*Auction, error)
	Insert(c ctx.Ctx, a *Auction) error
	Update(c ctx.Ctx, id Id, patchable Patchable) error
}

type EscrowRepo interface {
	FindOne(c ctx.Ctx, id Id) (*EscrowLedger, error)
	Save(c ctx.Ctx, ledger *EscrowLedger) error
}

type ConfigRepo interface {
	Get(c ctx.Ctx) (*Config, error)
	Save(c ctx.Ctx, cfg *Config) error
}

type ActivityRepo interface {
	Insert(c ctx.Ctx, activity *Activity) error
	FindAll(c ctx.Ctx, id Id, limit int32) ([]*Activity, error)
}

// TxRunner scopes repo writes made through the derived ctx to a single
// storage transaction: they commit or roll back together.
type TxRunner interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}

// UseCase is the unified router surface over both auction formats. Every
// mutating verb takes the true caller identity so escrow and entitlement
// resolve to the real actor, not a routing intermediary.
type UseCase interface {
	Create(c ctx.Ctx, caller domain.Address, params CreateParams) (*Auction, error)
	PlaceBid(c ctx.Ctx, caller domain.Address, id Id, amount string) error
	WithdrawBid(c ctx.Ctx, caller domain.Address, id Id) error
	BuyNow(c ctx.Ctx, caller domain.Address, id Id, payment string) error
	Settle(c ctx.Ctx, caller domain.Address, id Id) error
	Cancel(c ctx.Ctx, caller domain.Address, id Id) error

	GetAuction(c ctx.Ctx, id Id) (*Auction, error)
	CurrentPrice(c ctx.Ctx, id Id) (decimal.Decimal, error)
	// PriceAt evaluates the decay price curve at an arbitrary instant.
	// Ascending auctions have no time-parameterized price.
	PriceAt(c ctx.Ctx, id Id, at time.Time) (decimal.Decimal, error)
	AllAuctions(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	AuctionsBySeller(c ctx.Ctx, seller domain.Address) ([]*Auction, error)
	AuctionsByAsset(c ctx.Ctx, asset domain.AssetRef) ([]*Auction, error)
	IsActive(c ctx.Ctx, id Id) (bool, error)
	Activities(c ctx.Ctx, id Id, limit int32) ([]*Activity, error)
	PendingRefund(c ctx.Ctx, id Id, bidder domain.Address) (decimal.Decimal, error)
}

// AdminUseCase is the operator surface.
type AdminUseCase interface {
	Pause(c ctx.Ctx) error
	Unpause(c ctx.Ctx) error
	SetFeeBps(c ctx.Ctx, feeBps int64) error
	SetFeeRecipient(c ctx.Ctx, recipient domain.Address) error
	SetBidIncrementBps(c ctx.Ctx, incrementBps int64) error
	SetDurationBounds(c ctx.Ctx, min, max time.Duration) error
	SetExtension(c ctx.Ctx, threshold, extension time.Duration) error
	GetConfig(c ctx.Ctx) (*Config, error)
	// SetValidator replaces the availability validator used by every
	// subsequent operation. Rejects nil.
	SetValidator(c ctx.Ctx, v domain.AvailabilityValidator) error
	// ResetAssetStatus clears the tracked in-auction flag for an asset.
	// Advisory only, it never moves funds.
	ResetAssetStatus(c ctx.Ctx, asset domain.AssetRef, owner domain.Address) error
	// RefundAll pays out every pending refund of an auction, optionally
	// excluding one bidder. Recovery path for stuck withdrawals.
	RefundAll(c ctx.Ctx, id Id, exclude *domain.Address) error
}
