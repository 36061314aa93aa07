package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/zuno-xyz/goauction/base/ctx"
)

type cacheMiddlewareSuite struct {
	suite.Suite
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	SetupCache()
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/auctions?status=active", nil)
	rec := httptest.NewRecorder()
	res := `{"data":[],"status":"success"}`
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, res)
	}

	c := e.NewContext(req, rec)
	cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
	c.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h)(c)) {
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(res, rec.Body.String())
	}

	// second request hits the cache, the fresh handler body never shows
	req2 := httptest.NewRequest(http.MethodGet, "/auctions?status=active", nil)
	rec2 := httptest.NewRecorder()
	h2 := func(c echo.Context) error {
		return c.String(http.StatusOK, `{"data":["stale"],"status":"success"}`)
	}
	c2 := e.NewContext(req2, rec2)
	c2.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h2)(c2)) {
		s.Equal(http.StatusOK, rec2.Code)
		s.Equal(res, rec2.Body.String())
	}
}
