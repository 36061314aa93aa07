package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/database/mongoclient"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
	"github.com/zuno-xyz/goauction/service/query"
)

type auctionRepo struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepo{q}
}

func (im *auctionRepo) makeQuery(options auction.FindAllOptions) bson.M {
	query := bson.M{}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.AssetKey != nil {
		query["assetKey"] = *options.AssetKey
	}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	if options.Format != nil {
		query["format"] = *options.Format
	}

	if options.EndTimeLT != nil {
		query["endTime"] = bson.M{"$lt": *options.EndTimeLT}
	}

	return query
}

func (im *auctionRepo) FindAll(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := im.makeQuery(options)

	offset := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	limit := 0
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "-createdAt"
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*auction.Auction{}
	err = im.q.Search(ctx, domain.TableAuctions, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *auctionRepo) Count(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) (int, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return 0, err
	}
	query := im.makeQuery(options)

	n, err := im.q.Count(ctx, domain.TableAuctions, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return n, nil
}

func (im *auctionRepo) FindOne(ctx ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	res := auction.Auction{}
	err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"id": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *auctionRepo) Insert(ctx ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(ctx, domain.TableAuctions, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionRepo) Update(ctx ctx.Ctx, id auction.Id, patchable auction.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableAuctions, bson.M{"id": id}, updater)
	if err == query.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"id":      id,
			"updater": updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
