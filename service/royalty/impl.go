package royalty

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/service/cache"
	"github.com/zuno-xyz/goauction/service/cache/provider/primitive"
)

type royaltyTerms struct {
	Recipient domain.Address `json:"recipient"`
	Bps       int64          `json:"bps"`
}

type client struct {
	client   http.Client
	endpoint string
	timeout  time.Duration
	cache    cache.Service
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:   cfg.HttpClient,
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "royalty_cache",
			Cache: primitive.NewPrimitive("royalty_cache", 4),
		}),
	}
}

func (c *client) RoyaltyInfo(ctx bCtx.Ctx, asset domain.AssetRef) (domain.Address, int64, error) {
	url := fmt.Sprintf("%s/royalties/%d/%s/%s", c.endpoint, asset.ChainId, asset.Contract, asset.TokenId)

	terms := royaltyTerms{}
	if err := c.cache.GetByFunc(ctx, asset.Key(), &terms, func() (interface{}, error) {
		data, err := c.get(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"url": url,
				"err": err,
			}).Error("c.get failed")
			return nil, err
		}
		fetched := royaltyTerms{}
		if err := json.Unmarshal(data, &fetched); err != nil {
			ctx.WithFields(log.Fields{
				"url": url,
				"err": err,
			}).Error("failed to unmarshal royalty terms")
			return nil, err
		}
		return &fetched, nil
	}); err != nil {
		return "", 0, err
	}

	return terms.Recipient, terms.Bps, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}
