package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
	"github.com/zuno-xyz/goauction/service/query"
)

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) auction.ActivityRepo {
	return &activityRepo{q}
}

func (im *activityRepo) Insert(ctx ctx.Ctx, activity *auction.Activity) error {
	if err := im.q.Insert(ctx, domain.TableAuctionActivities, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": activity.AuctionId,
			"kind":      activity.Kind,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *activityRepo) FindAll(ctx ctx.Ctx, id auction.Id, limit int32) ([]*auction.Activity, error) {
	res := []*auction.Activity{}
	err := im.q.Search(ctx, domain.TableAuctionActivities, 0, int(limit), "-createdAt", bson.M{"auctionId": id}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
