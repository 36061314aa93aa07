package auction

import (
	"time"

	"github.com/google/uuid"
	"github.com/zuno-xyz/goauction/domain"
)

type ActivityKind string

const (
	ActivityCreated   ActivityKind = "created"
	ActivityBid       ActivityKind = "bid"
	ActivityExtended  ActivityKind = "extended"
	ActivityWithdrawn ActivityKind = "withdrawn"
	ActivityBought    ActivityKind = "bought"
	ActivitySettled   ActivityKind = "settled"
	ActivityEnded     ActivityKind = "ended"
	ActivityCancelled ActivityKind = "cancelled"
)

// Activity is an append-only record of a mutating auction operation.
type Activity struct {
	Id        string         `json:"id" bson:"id"`
	AuctionId Id             `json:"auctionId" bson:"auctionId"`
	Kind      ActivityKind   `json:"kind" bson:"kind"`
	Actor     domain.Address `json:"actor" bson:"actor"`
	Amount    string         `json:"amount,omitempty" bson:"amount,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

func NewActivity(auctionId Id, kind ActivityKind, actor domain.Address, amount string, at time.Time) *Activity {
	return &Activity{
		Id:        uuid.NewString(),
		AuctionId: auctionId,
		Kind:      kind,
		Actor:     actor.ToLower(),
		Amount:    amount,
		CreatedAt: at,
	}
}
