package royalty

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/domain"
)

func TestRoyaltyInfo(t *testing.T) {
	req := require.New(t)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		req.Equal("/royalties/1/0xdcf0de6b17785a143d006e1515a6afd123cde8ba/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recipient":"0x9a1c1e2b2c4f1a9f0f2e245dfc4a7d8c858c4d21","bps":500}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   srv.URL,
		Timeout:    5 * time.Second,
	})

	asset := domain.AssetRef{
		ChainId:  1,
		Contract: "0xdcf0de6b17785a143d006e1515a6afd123cde8ba",
		TokenId:  "42",
		Units:    1,
	}

	ctx := bCtx.Background()
	recipient, bps, err := c.RoyaltyInfo(ctx, asset)
	req.NoError(err)
	req.Equal(domain.Address("0x9a1c1e2b2c4f1a9f0f2e245dfc4a7d8c858c4d21"), recipient)
	req.Equal(int64(500), bps)

	// second lookup is served from cache
	_, _, err = c.RoyaltyInfo(ctx, asset)
	req.NoError(err)
	req.Equal(int32(1), atomic.LoadInt32(&hits))
}

func TestRoyaltyInfoUpstreamError(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   srv.URL,
		Timeout:    5 * time.Second,
	})

	asset := domain.AssetRef{ChainId: 1, Contract: "0xdead", TokenId: "1", Units: 1}
	_, _, err := c.RoyaltyInfo(bCtx.Background(), asset)
	req.Error(err)
}
