package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/database/postgres"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/googleads"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/metaads"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/metaads/metaadsclient"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/repository"
	"github.com/storepulse/commerce-dashboard-api/internal/api"
	"github.com/storepulse/commerce-dashboard-api/internal/config"
	"github.com/storepulse/commerce-dashboard-api/internal/scheduler"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/productmetrics"
	"github.com/storepulse/commerce-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productMetricRepo := repository.NewProductMetricRepository(pgConn)
	dailySummaryRepo := repository.NewDailySummaryRepository(pgConn)

	shopifyClient := shopifyclient.NewClient(cfg.Shopify.GraphQLURL, cfg.Shopify.AccessToken)
	orderIntegrator := shopify.New(cfg, shopifyClient)

	googleAdsClient := googleadsclient.NewClient(cfg)
	googleAdsIntegrator := googleads.New(cfg, googleAdsClient)

	metaAdsClient := metaadsclient.NewClient(cfg)
	metaAdsIntegrator := metaads.New(cfg, metaAdsClient)

	reportingService := reporting.NewService(cfg, orderIntegrator, googleAdsIntegrator, metaAdsIntegrator)
	productMetricService := productmetrics.NewService(productMetricRepo)

	summarySyncService := scheduler.NewDailySummarySyncService(reportingService, dailySummaryRepo, cfg)
	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the daily summary sync scheduler")
	} else {
		logrus.Info("Daily summary sync scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		productMetricService,
		summarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
