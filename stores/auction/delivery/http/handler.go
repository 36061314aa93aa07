package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	bCtx "github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/delivery"
	"github.com/zuno-xyz/goauction/domain"
	"github.com/zuno-xyz/goauction/domain/auction"
	"github.com/zuno-xyz/goauction/middleware"
	"github.com/zuno-xyz/goauction/service/custody"
)

type handler struct {
	auctionUC auction.UseCase
	adminUC   auction.AdminUseCase
}

// New registers the auction routes. Mutating routes resolve the caller
// identity first; read-only listings sit behind a short response cache.
func New(e *echo.Echo, auctionUC auction.UseCase, adminUC auction.AdminUseCase) {
	h := &handler{auctionUC, adminUC}

	g := e.Group("/auctions")
	g.GET("", h.listAuctions, middleware.CacheHttp(10*time.Second))
	g.POST("", h.createAuction, middleware.Caller())

	ga := e.Group("/auction/:auctionId")
	ga.GET("", h.getAuction)
	ga.GET("/price", h.getCurrentPrice)
	ga.GET("/active", h.getIsActive)
	ga.GET("/activities", h.getActivities)
	ga.GET("/refunds/:bidder", h.getPendingRefund, middleware.IsValidAddress("bidder"))
	ga.POST("/bids", h.placeBid, middleware.Caller())
	ga.DELETE("/bids", h.withdrawBid, middleware.Caller())
	ga.POST("/buy", h.buyNow, middleware.Caller())
	ga.POST("/settle", h.settle, middleware.Caller())
	ga.POST("/cancel", h.cancel, middleware.Caller())

	gad := e.Group("/admin/auctions", middleware.Caller())
	gad.GET("/config", h.getConfig)
	gad.POST("/pause", h.pause)
	gad.POST("/unpause", h.unpause)
	gad.PUT("/fee", h.setFee)
	gad.PUT("/fee-recipient", h.setFeeRecipient)
	gad.PUT("/validator", h.setValidator)
	gad.PUT("/increment", h.setIncrement)
	gad.PUT("/durations", h.setDurations)
	gad.PUT("/extension", h.setExtension)
	gad.POST("/assets/reset", h.resetAssetStatus)
	gad.POST("/:auctionId/refunds", h.refundAll)
}

func caller(_ctx echo.Context) domain.Address {
	return _ctx.Get("caller").(domain.Address)
}

func auctionId(_ctx echo.Context) auction.Id {
	return auction.Id(_ctx.Param("auctionId"))
}

func (h *handler) listAuctions(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Seller *domain.Address `query:"seller"`
		Status *auction.Status `query:"status"`
		Format *auction.Format `query:"format"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}
	if p.Status != nil {
		opts = append(opts, auction.WithStatus(*p.Status))
	}
	if p.Format != nil {
		opts = append(opts, auction.WithFormat(*p.Format))
	}

	res, err := h.auctionUC.AllAuctions(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) createAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId      domain.ChainId `json:"chainId" validate:"required"`
		Contract     domain.Address `json:"contract" validate:"required"`
		TokenId      domain.TokenId `json:"tokenId" validate:"required"`
		Units        int64          `json:"units"`
		Format       auction.Format `json:"format" validate:"required"`
		StartPrice   string         `json:"startPrice" validate:"required"`
		ReservePrice string         `json:"reservePrice"`
		DurationSec  int64          `json:"durationSec" validate:"required"`
		DropRateBps  int64          `json:"dropRateBps"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	if p.Units == 0 {
		p.Units = 1
	}

	res, err := h.auctionUC.Create(ctx, caller(_ctx), auction.CreateParams{
		Asset: domain.AssetRef{
			ChainId:  p.ChainId,
			Contract: p.Contract,
			TokenId:  p.TokenId,
			Units:    p.Units,
		},
		Format:       p.Format,
		StartPrice:   p.StartPrice,
		ReservePrice: p.ReservePrice,
		Duration:     time.Duration(p.DurationSec) * time.Second,
		DropRateBps:  p.DropRateBps,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, res)
}

func (h *handler) getAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	res, err := h.auctionUC.GetAuction(ctx, auctionId(_ctx))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getCurrentPrice(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		At string `query:"at"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	var price decimal.Decimal
	var err error
	if p.At != "" {
		at, perr := time.Parse(time.RFC3339, p.At)
		if perr != nil {
			return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid at timestamp")
		}
		price, err = h.auctionUC.PriceAt(ctx, auctionId(_ctx), at)
	} else {
		price, err = h.auctionUC.CurrentPrice(ctx, auctionId(_ctx))
	}
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	res := struct {
		Price string `json:"price"`
	}{
		Price: price.String(),
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getIsActive(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	active, err := h.auctionUC.IsActive(ctx, auctionId(_ctx))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	res := struct {
		Active bool `json:"active"`
	}{
		Active: active,
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getActivities(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Limit int32 `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.Limit == 0 {
		p.Limit = 50
	}

	res, err := h.auctionUC.Activities(ctx, auctionId(_ctx), p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getPendingRefund(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	bidder := domain.Address(_ctx.Param("bidder"))
	owed, err := h.auctionUC.PendingRefund(ctx, auctionId(_ctx), bidder)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	res := struct {
		Refundable string `json:"refundable"`
	}{
		Refundable: owed.String(),
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) placeBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Amount string `json:"amount" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	if err := h.auctionUC.PlaceBid(ctx, caller(_ctx), auctionId(_ctx), p.Amount); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) withdrawBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	if err := h.auctionUC.WithdrawBid(ctx, caller(_ctx), auctionId(_ctx)); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) buyNow(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Payment string `json:"payment" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	if err := h.auctionUC.BuyNow(ctx, caller(_ctx), auctionId(_ctx), p.Payment); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) settle(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	if err := h.auctionUC.Settle(ctx, caller(_ctx), auctionId(_ctx)); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) cancel(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	if err := h.auctionUC.Cancel(ctx, caller(_ctx), auctionId(_ctx)); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

// admin surface

func (h *handler) getConfig(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	cfg, err := h.adminUC.GetConfig(ctx)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, cfg)
}

func (h *handler) pause(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	if err := h.adminUC.Pause(ctx); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) unpause(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	if err := h.adminUC.Unpause(ctx); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setFee(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		FeeBps int64 `json:"feeBps"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.adminUC.SetFeeBps(ctx, p.FeeBps); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setFeeRecipient(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Recipient domain.Address `json:"recipient" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	if err := h.adminUC.SetFeeRecipient(ctx, p.Recipient); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setValidator(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Endpoint   string `json:"endpoint" validate:"required,url"`
		TimeoutSec int64  `json:"timeoutSec"`
		ApiKey     string `json:"apiKey"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	if p.TimeoutSec == 0 {
		p.TimeoutSec = 10
	}

	v := custody.NewClient(&custody.ClientCfg{
		Endpoint: p.Endpoint,
		Timeout:  time.Duration(p.TimeoutSec) * time.Second,
		Apikey:   p.ApiKey,
	})
	if err := h.adminUC.SetValidator(ctx, v); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setIncrement(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		IncrementBps int64 `json:"incrementBps"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.adminUC.SetBidIncrementBps(ctx, p.IncrementBps); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setDurations(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		MinSec int64 `json:"minSec"`
		MaxSec int64 `json:"maxSec"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	min := time.Duration(p.MinSec) * time.Second
	max := time.Duration(p.MaxSec) * time.Second
	if err := h.adminUC.SetDurationBounds(ctx, min, max); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setExtension(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ThresholdSec int64 `json:"thresholdSec"`
		ExtensionSec int64 `json:"extensionSec"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	threshold := time.Duration(p.ThresholdSec) * time.Second
	extension := time.Duration(p.ExtensionSec) * time.Second
	if err := h.adminUC.SetExtension(ctx, threshold, extension); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) resetAssetStatus(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId  domain.ChainId `json:"chainId" validate:"required"`
		Contract domain.Address `json:"contract" validate:"required"`
		TokenId  domain.TokenId `json:"tokenId" validate:"required"`
		Owner    domain.Address `json:"owner" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	asset := domain.AssetRef{
		ChainId:  p.ChainId,
		Contract: p.Contract,
		TokenId:  p.TokenId,
	}
	if err := h.adminUC.ResetAssetStatus(ctx, asset, p.Owner); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) refundAll(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Exclude *domain.Address `json:"exclude"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.adminUC.RefundAll(ctx, auctionId(_ctx), p.Exclude); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}
