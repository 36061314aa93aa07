package royalty

import (
	"errors"
	"net/http"
	"time"

	"github.com/zuno-xyz/goauction/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Client resolves creator royalty terms from the royalty registry service.
// Terms change rarely, so lookups are cached in process for an hour.
type Client interface {
	domain.RoyaltyRegistry
}

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	Timeout    time.Duration
}
