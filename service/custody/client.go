package custody

import (
	"errors"
	"net/http"
	"time"

	"github.com/zuno-xyz/goauction/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Client talks to the custody service that holds marketplace assets and
// escrowed funds. It covers the transferrer, distributor and availability
// boundaries of the auction engine; the engine never talks to custody
// through anything else.
type Client interface {
	domain.AssetTransferrer
	domain.PaymentDistributor
	domain.AvailabilityValidator
}

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	Timeout    time.Duration
	Apikey     string
}
