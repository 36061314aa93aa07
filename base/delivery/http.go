package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data as a json envelope. Errors are translated to the
// proper status code according to the domain error group.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrAuctionNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case domain.IsAuthorizationError(err):
			status = http.StatusForbidden
		case domain.IsValidationError(err):
			status = http.StatusBadRequest
		case domain.IsStateError(err) || domain.IsPaymentError(err):
			status = http.StatusConflict
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
