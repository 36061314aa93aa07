package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/delivery"
	"github.com/zuno-xyz/goauction/base/log"
	"github.com/zuno-xyz/goauction/base/metrics"
	"github.com/zuno-xyz/goauction/base/validator"
	"github.com/zuno-xyz/goauction/domain"
)

// CallerHeader carries the authenticated caller address resolved by the
// edge gateway. Escrow accounting keys off this identity, so mutating
// auction routes reject requests without it.
const CallerHeader = "X-Caller"

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	// another stuff , may be needed by middleware
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// AddContext adds custom context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// Caller resolves the caller identity header into the echo context. The
// address is lowercased so downstream comparisons are canonical.
func Caller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := c.Request().Header.Get(CallerHeader)
			if caller == "" {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, "missing caller identity")
			}
			if !validator.IsValidAddress(caller) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid caller address")
			}
			c.Set("caller", domain.Address(caller).ToLower())
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": c.Response().Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        c.Request().URL.Path,
				"httpMethod": c.Request().Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    c.Request().Header.Get("Referer"),
				"caller":     c.Request().Header.Get(CallerHeader),
			}

			n := res.Status
			switch {
			case n >= 400:
				fields["nextErr"] = err
			default:
			}

			c.Get("ctx").(ctx.Ctx).WithFields(fields).Info("response")
			return nil
		}
	}
}

func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
