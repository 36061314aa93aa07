package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
	"github.com/zuno-xyz/goauction/service/query"
)

type escrowRepo struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) auction.EscrowRepo {
	return &escrowRepo{q}
}

func (im *escrowRepo) FindOne(ctx ctx.Ctx, id auction.Id) (*auction.EscrowLedger, error) {
	res := auction.EscrowLedger{}
	err := im.q.FindOne(ctx, domain.TableEscrowLedgers, bson.M{"auctionId": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrEscrowLedgerGone
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	if res.PendingRefunds == nil {
		res.PendingRefunds = map[string]string{}
	}

	return &res, nil
}

func (im *escrowRepo) Save(ctx ctx.Ctx, ledger *auction.EscrowLedger) error {
	selector := bson.M{"auctionId": ledger.AuctionId}
	if err := im.q.Upsert(ctx, domain.TableEscrowLedgers, selector, ledger); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  ledger.AuctionId,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
