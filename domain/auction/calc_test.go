package auction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zuno-xyz/goauction/domain"
)

var testAsset = domain.AssetRef{
	ChainId:  1,
	Contract: "0xdcf0de6b17785a143d006e1515a6afd123cde8ba",
	TokenId:  "42",
	Units:    1,
}

func TestDeriveId(t *testing.T) {
	req := require.New(t)
	seller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	at := time.Unix(1700000000, 12345)

	id1 := DeriveId(testAsset, seller, at)
	id2 := DeriveId(testAsset, seller, at)
	req.Equal(id1, id2, "derivation must be deterministic")
	req.Len(string(id1), 66, "keccak hex with 0x prefix")

	req.NotEqual(id1, DeriveId(testAsset, seller, at.Add(time.Nanosecond)))
	req.NotEqual(id1, DeriveId(testAsset, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", at))

	other := testAsset
	other.TokenId = "43"
	req.NotEqual(id1, DeriveId(other, seller, at))
}

func TestValidateCreation(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name    string
		params  CreateParams
		wantErr error
	}{
		{
			name:   "valid ascending",
			params: CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1", ReservePrice: "2", Duration: 24 * time.Hour},
		},
		{
			name:   "valid ascending without reserve",
			params: CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1", Duration: 24 * time.Hour},
		},
		{
			name:   "valid decay",
			params: CreateParams{Asset: testAsset, Format: FormatDecay, StartPrice: "10", ReservePrice: "1", Duration: 24 * time.Hour, DropRateBps: 5000},
		},
		{
			name:    "zero duration",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1"},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "duration below config minimum",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1", Duration: time.Minute},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "duration above config maximum",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1", Duration: 31 * 24 * time.Hour},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "zero start price",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "0", Duration: 24 * time.Hour},
			wantErr: domain.ErrInvalidStartPrice,
		},
		{
			name:    "malformed start price",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "ten", Duration: 24 * time.Hour},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "ascending reserve below start",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "2", ReservePrice: "1", Duration: 24 * time.Hour},
			wantErr: domain.ErrInvalidReservePrice,
		},
		{
			name:    "ascending reserve above sanity bound",
			params:  CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1", ReservePrice: "10.01", Duration: 24 * time.Hour},
			wantErr: domain.ErrReservePriceTooHigh,
		},
		{
			name:   "ascending reserve exactly at sanity bound",
			params: CreateParams{Asset: testAsset, Format: FormatAscending, StartPrice: "1", ReservePrice: "10", Duration: 24 * time.Hour},
		},
		{
			name:    "decay drop rate too low",
			params:  CreateParams{Asset: testAsset, Format: FormatDecay, StartPrice: "10", Duration: 24 * time.Hour, DropRateBps: 99},
			wantErr: domain.ErrInvalidDropRate,
		},
		{
			name:    "decay drop rate too high",
			params:  CreateParams{Asset: testAsset, Format: FormatDecay, StartPrice: "10", Duration: 24 * time.Hour, DropRateBps: 5001},
			wantErr: domain.ErrInvalidDropRate,
		},
		{
			name:    "decay reserve above start",
			params:  CreateParams{Asset: testAsset, Format: FormatDecay, StartPrice: "10", ReservePrice: "11", Duration: 24 * time.Hour, DropRateBps: 1000},
			wantErr: domain.ErrInvalidReservePrice,
		},
		{
			name:    "unknown format",
			params:  CreateParams{Asset: testAsset, Format: "dutch", StartPrice: "1", Duration: 24 * time.Hour},
			wantErr: domain.ErrUnsupportedAuctionFormat,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := require.New(t)
			_, _, err := ValidateCreation(c.params, cfg)
			if c.wantErr != nil {
				req.ErrorIs(err, c.wantErr)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestMinimumBid(t *testing.T) {
	cases := []struct {
		name         string
		highest      string
		incrementBps int64
		reserve      string
		want         string
	}{
		{"five percent over highest", "1", 500, "0.5", "1.05"},
		{"reserve dominates", "1", 500, "2", "2"},
		{"no reserve", "10", 500, "0", "10.5"},
		{"zero increment", "10", 0, "0", "10"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MinimumBid(decimal.RequireFromString(c.highest), c.incrementBps, decimal.RequireFromString(c.reserve))
			require.True(t, got.Equal(decimal.RequireFromString(c.want)), "got %s want %s", got, c.want)
		})
	}
}

func TestExtendedEndTime(t *testing.T) {
	end := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	threshold := 15 * time.Minute
	extension := 15 * time.Minute

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		// scenario: bid 3 minutes before the end extends exactly once
		{"inside window", end.Add(-3 * time.Minute), end.Add(15 * time.Minute)},
		{"exactly at threshold", end.Add(-15 * time.Minute), end.Add(15 * time.Minute)},
		{"outside window", end.Add(-16 * time.Minute), end},
		{"after end", end.Add(time.Second), end},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExtendedEndTime(end, extension, threshold, c.now)
			require.True(t, got.Equal(c.want), "got %s want %s", got, c.want)
		})
	}
}

func TestDecayPriceAt(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	startPrice := decimal.RequireFromString("10")
	reserve := decimal.RequireFromString("1")

	cases := []struct {
		name    string
		rateBps int64
		at      time.Time
		want    string
	}{
		{"before start", 5000, start.Add(-time.Hour), "10"},
		{"at start", 5000, start, "10"},
		{"half rate one hour", 5000, start.Add(time.Hour), "5"},
		{"floors at reserve", 5000, start.Add(3 * time.Hour), "1"},
		{"ten percent half hour", 1000, start.Add(30 * time.Minute), "9.5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DecayPriceAt(startPrice, reserve, c.rateBps, start, c.at)
			require.True(t, got.Equal(decimal.RequireFromString(c.want)), "got %s want %s", got, c.want)
		})
	}
}

func TestDecayPriceMonotone(t *testing.T) {
	req := require.New(t)
	start := time.Now()
	startPrice := decimal.RequireFromString("3.7")

	prev := DecayPriceAt(startPrice, decimal.Zero, 700, start, start)
	for i := 1; i <= 48; i++ {
		at := start.Add(time.Duration(i) * 30 * time.Minute)
		cur := DecayPriceAt(startPrice, decimal.Zero, 700, start, at)
		req.False(cur.GreaterThan(prev), "price increased between steps at %d", i)
		req.False(cur.IsNegative(), "price went negative at %d", i)
		prev = cur
	}
}

func TestPaymentSplit(t *testing.T) {
	cases := []struct {
		name        string
		final       string
		feeBps      int64
		royaltyBps  int64
		wantFee     string
		wantRoyalty string
		wantSeller  string
		wantErr     error
	}{
		{"typical", "100", 250, 500, "2.5", "5", "92.5", nil},
		{"no royalty", "100", 250, 0, "2.5", "0", "97.5", nil},
		{"no fee no royalty", "1.05", 0, 0, "0", "0", "1.05", nil},
		{"fee plus royalty exceeds price", "100", 6000, 5000, "", "", "", domain.ErrFeeExceedsPrice},
		{"fee plus royalty exactly price", "100", 5000, 5000, "50", "50", "0", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := require.New(t)
			fee, royalty, seller, err := PaymentSplit(decimal.RequireFromString(c.final), c.feeBps, c.royaltyBps)
			if c.wantErr != nil {
				req.ErrorIs(err, c.wantErr)
				return
			}
			req.NoError(err)
			req.True(fee.Equal(decimal.RequireFromString(c.wantFee)), "fee %s", fee)
			req.True(royalty.Equal(decimal.RequireFromString(c.wantRoyalty)), "royalty %s", royalty)
			req.True(seller.Equal(decimal.RequireFromString(c.wantSeller)), "seller %s", seller)
			req.True(fee.Add(royalty).Add(seller).Equal(decimal.RequireFromString(c.final)), "split must conserve the final price")
		})
	}
}
