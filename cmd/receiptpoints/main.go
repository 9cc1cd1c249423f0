package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/tidwall/buntdb"

	"github.com/AbdelrahmanZeidan5/receipt-processor/api"
	"github.com/AbdelrahmanZeidan5/receipt-processor/internal/config"
	"github.com/AbdelrahmanZeidan5/receipt-processor/internal/metrics"
	"github.com/AbdelrahmanZeidan5/receipt-processor/internal/receipt"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg)

	// in memory database; scored receipts live for the process lifetime
	db, err := buntdb.Open(":memory:")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open in-memory store")
	}
	defer db.Close()

	repo := receipt.NewBuntDBReceiptRepository(db)

	// mux route handler; uses gorilla mux for handling dynamic routing
	handler := mux.NewRouter()
	handler.Use(
		api.RecoveryMiddleware(logger),
		api.LoggingMiddleware(logger),
		api.MetricsMiddleware(),
	)

	// Receipt API /receipts
	receiptApi := api.NewReceiptApi(repo, logger)
	receiptApi.InitializeRoutes(handler)

	handler.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("receipt points service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(cfg.ZerologLevel()).With().Timestamp().Logger()
}
