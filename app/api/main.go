package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/zuno-xyz/goauction/base/ctx"
	"github.com/zuno-xyz/goauction/base/database/mongoclient"
	"github.com/zuno-xyz/goauction/base/log"
	bValidator "github.com/zuno-xyz/goauction/base/validator"
	"github.com/zuno-xyz/goauction/domain"
	mmiddleware "github.com/zuno-xyz/goauction/middleware"
	"github.com/zuno-xyz/goauction/service/custody"
	"github.com/zuno-xyz/goauction/service/query"
	"github.com/zuno-xyz/goauction/service/royalty"
	auction_delivery "github.com/zuno-xyz/goauction/stores/auction/delivery/http"
	auction_repository "github.com/zuno-xyz/goauction/stores/auction/repository"
	auction_usecase "github.com/zuno-xyz/goauction/stores/auction/usecase"
	hc_delivery "github.com/zuno-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/zuno-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/zuno-xyz/goauction/stores/healthcheck/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	mmiddleware.SetupCache()

	// init custody service
	context.Info("init custody client")
	custodyClient := custody.NewClient(&custody.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("custody.endpoint"),
		Timeout:    viper.GetDuration("custody.timeout"),
		Apikey:     viper.GetString("custody.apiKey"),
	})

	// init royalty registry service
	context.Info("init royalty client")
	royaltyClient := royalty.NewClient(&royalty.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("royalty.endpoint"),
		Timeout:    viper.GetDuration("royalty.timeout"),
	})

	// init repositories
	auctionRepo := auction_repository.NewAuctionRepo(q)
	escrowRepo := auction_repository.NewEscrowRepo(q)
	configRepo := auction_repository.NewConfigRepo(q)
	activityRepo := auction_repository.NewActivityRepo(q)
	hcRepo := hc_repo.New(mongoClient)

	// init usecases
	auctionUC, adminUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:  auctionRepo,
		EscrowRepo:   escrowRepo,
		ConfigRepo:   configRepo,
		ActivityRepo: activityRepo,
		Tx:           q,
		Transferrer:  custodyClient,
		Distributor:  custodyClient,
		Validator:    custodyClient,
		Royalties:    royaltyClient,
	})
	hc := hc_usecase.New(hcRepo)

	// seed the fee recipient once; an operator update always wins
	if recipient := viper.GetString("marketplace.feeRecipient"); recipient != "" {
		cfg, err := adminUC.GetConfig(context)
		if err != nil {
			log.Log().WithField("err", err).Error("failed to load auction config")
		} else if cfg.FeeRecipient.IsEmpty() {
			if err := adminUC.SetFeeRecipient(context, domain.Address(recipient)); err != nil {
				log.Log().WithField("err", err).Error("failed to set fee recipient")
			}
		}
	}

	// register handlers
	auction_delivery.New(e, auctionUC, adminUC)
	hc_delivery.New(e, hc)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
