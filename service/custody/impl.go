package custody

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/base/metrics"
	"github.com/zuno-xyz/goauction/domain"
)

const apikeyHeader = "X-Api-Key"

type assetStatus string

const (
	statusInAuction assetStatus = "in_auction"
	statusAvailable assetStatus = "available"
	statusSold      assetStatus = "sold"
)

type client struct {
	client   http.Client
	endpoint string
	timeout  time.Duration
	apikey   string
	met      metrics.Service
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:   cfg.HttpClient,
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		apikey:   cfg.Apikey,
		met:      metrics.New("custody"),
	}
}

func (c *client) Transfer(ctx bCtx.Ctx, asset domain.AssetRef, units int64, from, to domain.Address) error {
	defer c.met.BumpTime("time", "func", "transfer").End()

	body := struct {
		ChainId  domain.ChainId `json:"chainId"`
		Contract domain.Address `json:"contract"`
		TokenId  domain.TokenId `json:"tokenId"`
		Units    int64          `json:"units"`
		From     domain.Address `json:"from"`
		To       domain.Address `json:"to"`
	}{asset.ChainId, asset.Contract, asset.TokenId, units, from, to}

	url := fmt.Sprintf("%s/transfers", c.endpoint)
	if _, err := c.post(ctx, url, body); err != nil {
		c.met.BumpSum("transfer.err", 1)
		return err
	}
	return nil
}

func (c *client) Payout(ctx bCtx.Ctx, recipient domain.Address, amount decimal.Decimal) error {
	defer c.met.BumpTime("time", "func", "payout").End()

	body := struct {
		Recipient domain.Address `json:"recipient"`
		Amount    string         `json:"amount"`
	}{recipient, amount.String()}

	url := fmt.Sprintf("%s/payouts", c.endpoint)
	if _, err := c.post(ctx, url, body); err != nil {
		c.met.BumpSum("payout.err", 1)
		return err
	}
	return nil
}

func (c *client) IsAvailable(ctx bCtx.Ctx, asset domain.AssetRef, owner domain.Address) (bool, error) {
	defer c.met.BumpTime("time", "func", "isAvailable").End()

	url := fmt.Sprintf("%s/assets/%d/%s/%s/availability?owner=%s",
		c.endpoint, asset.ChainId, asset.Contract, asset.TokenId, owner)
	data, err := c.get(ctx, url)
	if err != nil {
		return false, err
	}

	res := struct {
		Available bool `json:"available"`
	}{}
	if err := json.Unmarshal(data, &res); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to unmarshal availability")
		return false, err
	}
	return res.Available, nil
}

func (c *client) SetInAuction(ctx bCtx.Ctx, asset domain.AssetRef, owner domain.Address) error {
	return c.setStatus(ctx, asset, owner, "", statusInAuction)
}

func (c *client) SetAvailable(ctx bCtx.Ctx, asset domain.AssetRef, owner domain.Address) error {
	return c.setStatus(ctx, asset, owner, "", statusAvailable)
}

func (c *client) SetSold(ctx bCtx.Ctx, asset domain.AssetRef, from, to domain.Address) error {
	return c.setStatus(ctx, asset, from, to, statusSold)
}

func (c *client) setStatus(ctx bCtx.Ctx, asset domain.AssetRef, owner, to domain.Address, status assetStatus) error {
	defer c.met.BumpTime("time", "func", "setStatus", "status", string(status)).End()

	body := struct {
		ChainId  domain.ChainId `json:"chainId"`
		Contract domain.Address `json:"contract"`
		TokenId  domain.TokenId `json:"tokenId"`
		Owner    domain.Address `json:"owner"`
		To       domain.Address `json:"to,omitempty"`
		Status   assetStatus    `json:"status"`
	}{asset.ChainId, asset.Contract, asset.TokenId, owner, to, status}

	url := fmt.Sprintf("%s/assets/status", c.endpoint)
	if _, err := c.post(ctx, url, body); err != nil {
		c.met.BumpSum("setStatus.err", 1, "status", string(status))
		return err
	}
	return nil
}

func (c *client) post(ctx bCtx.Ctx, url string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, "POST", url, bytes.NewReader(payload))
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	return c.do(ctx, "GET", url, nil)
}

func (c *client) do(ctx bCtx.Ctx, method, url string, body *bytes.Reader) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apikey != "" {
		req.Header.Set(apikeyHeader, c.apikey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
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
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
