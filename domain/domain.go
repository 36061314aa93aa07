package domain

import (
	"fmt"
	"strings"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// AssetRef identifies a quantity of a collection token. Units is 1 for
// unique assets and may be larger for semi-fungible ones.
type AssetRef struct {
	ChainId  ChainId `json:"chainId" bson:"chainId"`
	Contract Address `json:"contract" bson:"contract"`
	TokenId  TokenId `json:"tokenId" bson:"tokenId"`
	Units    int64   `json:"units" bson:"units"`
}

func (r AssetRef) LowerCase() AssetRef {
	r.Contract = r.Contract.ToLower()
	return r
}

func (r AssetRef) Key() string {
	return fmt.Sprintf("%d:%s:%s", r.ChainId, r.Contract.ToLowerStr(), r.TokenId)
}

// Table is a mongo collection name
type Table string

const (
	TableAuctions          Table = "auctions"
	TableEscrowLedgers     Table = "escrow_ledgers"
	TableAuctionConfigs    Table = "auction_configs"
	TableAuctionActivities Table = "auction_activities"
)

// basis point denominator, 10000 bps == 100%
const BpsDenominator = 10000
