package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)

	type patch struct {
		Status     *string `bson:"status,omitempty"`
		HighestBid *string `bson:"highestBid,omitempty"`
		BidCount   int     `bson:"bidCount,omitempty"`
	}

	status := "active"
	m, err := MakeBsonM(patch{Status: &status, BidCount: 3})
	req.NoError(err)
	req.Equal("active", m["status"])
	req.Equal(3, m["bidCount"])
	req.NotContains(m, "highestBid")
}
