package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"minify/internal/config"
	"minify/internal/database"
	_ "minify/internal/docs" // Import swagger docs
	"minify/internal/events"
	"minify/internal/logger"
	"minify/internal/refdata"
	"minify/internal/server"
	"minify/internal/services"
	"minify/internal/validator"
)

// @title           Minify API
// @version         1.0
// @description     Minify tracks transactions and subscriptions, aggregates monthly spending in a chosen currency and forecasts upcoming charges.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared key for the rate ingestion pipeline.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.InitWithLevel(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	validator.Register()

	dbManager, err := database.NewManager(database.FromAppConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	data, err := refdata.Load(cfg.RefdataPath)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeded, err := services.NewExchangeRateService(dbManager.DB()).SeedIfEmpty(ctx, data.RatesFor(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to seed exchange rates: %w", err)
	}
	if seeded > 0 {
		log.Infof("Seeded %d exchange rates", seeded)
	}

	app := server.New(server.Deps{
		DB:        dbManager.DB(),
		Config:    cfg,
		Refdata:   data,
		Publisher: publisher,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Minify backend server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newPublisher connects to the broker when one is configured and falls back
// to logging events otherwise.
func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Get().Info("AMQP_URL not set, dashboard events go to the log")
		return events.LogPublisher{}, nil
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	return publisher, nil
}
