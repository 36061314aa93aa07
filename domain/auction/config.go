package auction

import (
	"time"

	"github.com/zuno-xyz/goauction/domain"
)

// Engine-wide hard bounds. Operator updates are validated against these,
// they are not themselves configurable.
const (
	HardMaxFeeBps      = 2000
	HardMinDuration    = time.Minute
	HardMaxDuration    = 365 * 24 * time.Hour
	HardMinDropRateBps = 100  // 1% per hour
	HardMaxDropRateBps = 5000 // 50% per hour
)

// Config is the shared, operator-mutable marketplace auction configuration.
// A single document; every engine operation reads it.
type Config struct {
	FeeBps             int64          `json:"feeBps" bson:"feeBps"`
	FeeRecipient       domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	BidIncrementBps    int64          `json:"bidIncrementBps" bson:"bidIncrementBps"`
	MinDuration        time.Duration  `json:"minDuration" bson:"minDuration"`
	MaxDuration        time.Duration  `json:"maxDuration" bson:"maxDuration"`
	ExtensionThreshold time.Duration  `json:"extensionThreshold" bson:"extensionThreshold"`
	ExtensionDuration  time.Duration  `json:"extensionDuration" bson:"extensionDuration"`
	MinDropRateBps     int64          `json:"minDropRateBps" bson:"minDropRateBps"`
	MaxDropRateBps     int64          `json:"maxDropRateBps" bson:"maxDropRateBps"`
	Paused             bool           `json:"paused" bson:"paused"`
	UpdatedAt          time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func DefaultConfig() *Config {
	return &Config{
		FeeBps:             250, // 2.5%
		BidIncrementBps:    500, // 5%
		MinDuration:        time.Hour,
		MaxDuration:        30 * 24 * time.Hour,
		ExtensionThreshold: 15 * time.Minute,
		ExtensionDuration:  15 * time.Minute,
		MinDropRateBps:     HardMinDropRateBps,
		MaxDropRateBps:     HardMaxDropRateBps,
	}
}

// Validate checks the config against the engine-wide hard bounds.
func (c *Config) Validate() error {
	if c.FeeBps < 0 || c.FeeBps > HardMaxFeeBps {
		return domain.ErrInvalidFeeRate
	}
	if c.BidIncrementBps <= 0 {
		return domain.ErrInvalidBidIncrement
	}
	if c.MinDuration < HardMinDuration || c.MaxDuration > HardMaxDuration || c.MinDuration > c.MaxDuration {
		return domain.ErrInvalidDuration
	}
	if c.MinDropRateBps < HardMinDropRateBps || c.MaxDropRateBps > HardMaxDropRateBps || c.MinDropRateBps > c.MaxDropRateBps {
		return domain.ErrInvalidDropRate
	}
	return nil
}
