package main

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/swark/arkpay/internal/adapter/client/exchange"
	"github.com/swark/arkpay/internal/adapter/client/ledger"
	"github.com/swark/arkpay/internal/adapter/config"
	"github.com/swark/arkpay/internal/adapter/handler/http"
	"github.com/swark/arkpay/internal/adapter/logger"
	"github.com/swark/arkpay/internal/adapter/metrics"
	"github.com/swark/arkpay/internal/adapter/notify"
	"github.com/swark/arkpay/internal/adapter/scheduler"
	"github.com/swark/arkpay/internal/adapter/storage"
	"github.com/swark/arkpay/internal/adapter/storage/repository"
	"github.com/swark/arkpay/internal/adapter/wallet"
	"github.com/swark/arkpay/internal/core/domain"
	"github.com/swark/arkpay/internal/core/port"
	"github.com/swark/arkpay/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	ledgerClient, err := ledger.NewClient(conf.Node, log.Named("Ledger"))
	if err != nil {
		log.Error("ledger client creating error", zap.Error(err))
		return
	}

	rates, err := exchange.NewClient(conf.Exchange, log.Named("Exchange"))
	if err != nil {
		log.Error("exchange client creating error", zap.Error(err))
		return
	}

	var notifier port.Notifier
	if conf.Gateway.SendStatusMail {
		mailer, err := notify.NewMailer(conf.Mailer, log.Named("Mailer"))
		if err != nil {
			log.Error("mailer creating error", zap.Error(err))
			return
		}
		notifier = mailer
	}

	wallets, err := wallet.NewPool(conf.Gateway.Wallets)
	if err != nil {
		log.Error("wallet pool creating error", zap.Error(err))
		return
	}

	factor, err := decimal.Parse(conf.Gateway.CurrencyFactor)
	if err != nil {
		log.Error("currency factor parsing error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, ledgerClient, rates, notifier, wallets,
		service.Config{
			Confirmations:       conf.Gateway.Confirmations,
			SendStatusMail:      conf.Gateway.SendStatusMail,
			LedgerCurrency:      conf.Gateway.LedgerCurrency,
			DefaultCurrency:     conf.Gateway.DefaultCurrency,
			CurrencyFactor:      factor,
			UnitScale:           conf.Gateway.UnitScale,
			VendorFieldTemplate: conf.Gateway.VendorFieldTemplate,
			PaidStatus:          domain.PaymentStatus(conf.Gateway.PaidStatus),
			PaymentMethodID:     conf.Gateway.PaymentMethodID,
		}, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	if conf.App.MetricsAddress != "" {
		metrics.StartMetricsServer(conf.App.MetricsAddress)
	}

	sweeper := scheduler.NewSweeper(svc, conf.Gateway.SweepInterval, log.Named("Sweeper"))
	go sweeper.Run(ctx)

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
