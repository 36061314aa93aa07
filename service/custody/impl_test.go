package custody

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/domain"
)

var testAsset = domain.AssetRef{
	ChainId:  1,
	Contract: "0xdcf0de6b17785a143d006e1515a6afd123cde8ba",
	TokenId:  "42",
	Units:    1,
}

func newTestClient(handler http.HandlerFunc) (Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   srv.URL,
		Timeout:    5 * time.Second,
		Apikey:     "test-key",
	})
	return c, srv
}

func TestTransfer(t *testing.T) {
	req := require.New(t)

	var got map[string]interface{}
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/transfers", r.URL.Path)
		req.Equal("test-key", r.Header.Get(apikeyHeader))
		body, _ := ioutil.ReadAll(r.Body)
		req.NoError(json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	err := c.Transfer(bCtx.Background(), testAsset, 1, "0xseller", "0xbuyer")
	req.NoError(err)
	req.Equal("42", got["tokenId"])
	req.Equal("0xbuyer", got["to"])
}

func TestTransferFailure(t *testing.T) {
	req := require.New(t)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	err := c.Transfer(bCtx.Background(), testAsset, 1, "0xseller", "0xbuyer")
	req.ErrorIs(err, ErrStatusCodeNotOk)
}

func TestPayout(t *testing.T) {
	req := require.New(t)

	var got map[string]interface{}
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/payouts", r.URL.Path)
		body, _ := ioutil.ReadAll(r.Body)
		req.NoError(json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	err := c.Payout(bCtx.Background(), "0xalice", decimal.RequireFromString("1.85"))
	req.NoError(err)
	req.Equal("1.85", got["amount"])
}

func TestIsAvailable(t *testing.T) {
	req := require.New(t)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("0xowner", r.URL.Query().Get("owner"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"available":true}`))
	})
	defer srv.Close()

	ok, err := c.IsAvailable(bCtx.Background(), testAsset, "0xowner")
	req.NoError(err)
	req.True(ok)
}

func TestSetStatusTransitions(t *testing.T) {
	req := require.New(t)

	var statuses []string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/assets/status", r.URL.Path)
		body, _ := ioutil.ReadAll(r.Body)
		var got map[string]interface{}
		req.NoError(json.Unmarshal(body, &got))
		statuses = append(statuses, got["status"].(string))
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	ctx := bCtx.Background()
	req.NoError(c.SetInAuction(ctx, testAsset, "0xowner"))
	req.NoError(c.SetAvailable(ctx, testAsset, "0xowner"))
	req.NoError(c.SetSold(ctx, testAsset, "0xowner", "0xbuyer"))
	req.Equal([]string{"in_auction", "available", "sold"}, statuses)
}
