package healthcheck

import (
	"github.com/zuno-xyz/goauction/base/ctx"
)

// HealthCheckRepo represent the healthcheck repository
type HealthCheckRepo interface {
	PingDB(ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck usecase
type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
