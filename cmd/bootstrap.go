package cmd

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/payment"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/repository"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/service"
	"github.com/vibast-solutions/ms-go-vendor-billing/config"

	_ "github.com/go-sql-driver/mysql"
)

type services struct {
	subscription  *service.VendorSubscriptionService
	paymentReturn *service.PaymentReturnService
	apiClient     *payment.APIClient
}

func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	return cfg
}

func mustOpenDatabase(cfg *config.Config) *sql.DB {
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}
	return db
}

func mustBuildServices(cfg *config.Config, db *sql.DB) *services {
	location, err := cfg.Billing.Location()
	if err != nil {
		logrus.WithError(err).WithField("time_zone", cfg.Billing.TimeZone).Fatal("Failed to load billing time zone")
	}

	if cfg.Gateway.MerchantID == "" || cfg.Gateway.MerchantKey == "" {
		logrus.WithFields(baseFields(cfg, "bootstrap")).Warn("Payment gateway credentials are not configured; paid plan selection will fail")
	}

	profileRepo := repository.NewVendorProfileRepository(db)
	gateway := payment.NewGateway(cfg.Gateway, time.Now)
	apiClient := payment.NewAPIClient(cfg.Gateway, &http.Client{Timeout: cfg.Gateway.RequestTimeout}, time.Now)

	return &services{
		subscription:  service.NewVendorSubscriptionService(profileRepo, gateway, payment.NewResponseRedirector(), location),
		paymentReturn: service.NewPaymentReturnService(profileRepo, apiClient),
		apiClient:     apiClient,
	}
}

func closeDatabase(db *sql.DB) {
	if err := db.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close database")
	}
}
