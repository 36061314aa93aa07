package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
	"github.com/zuno-xyz/goauction/service/cache"
	"github.com/zuno-xyz/goauction/service/cache/provider/primitive"
	"github.com/zuno-xyz/goauction/service/query"
)

const configDocKey = "global"

// configDoc pins the singleton marketplace config to a fixed key.
type configDoc struct {
	Key    string          `json:"key" bson:"key"`
	Config *auction.Config `json:"config" bson:"config"`
}

type configRepo struct {
	q     query.Mongo
	cache cache.Service
}

// NewConfigRepo reads the marketplace config through an in-process cache.
// The config sits on the hot path of every bid, so a short ttl keeps reads
// off mongo without making admin updates invisible for long.
func NewConfigRepo(q query.Mongo) auction.ConfigRepo {
	c := cache.New(cache.ServiceConfig{
		Ttl:   30 * time.Second,
		Pfx:   "auction-config",
		Cache: primitive.NewPrimitive("auction-config", 2),
	})
	return &configRepo{q: q, cache: c}
}

func (im *configRepo) Get(ctx ctx.Ctx) (*auction.Config, error) {
	res := &configDoc{}
	err := im.cache.GetByFunc(ctx, configDocKey, res, func() (interface{}, error) {
		doc := configDoc{}
		if err := im.q.FindOne(ctx, domain.TableAuctionConfigs, bson.M{"key": configDocKey}, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	})
	if err == query.ErrNotFound {
		return nil, domain.ErrConfigNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return nil, err
	}

	return res.Config, nil
}

func (im *configRepo) Save(ctx ctx.Ctx, cfg *auction.Config) error {
	doc := configDoc{Key: configDocKey, Config: cfg}
	if err := im.q.Upsert(ctx, domain.TableAuctionConfigs, bson.M{"key": configDocKey}, doc); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Upsert")
		return err
	}

	if err := im.cache.Del(ctx, configDocKey); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.Del")
	}

	return nil
}
