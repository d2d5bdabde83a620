package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"villastay/internal/app/validate"
	"villastay/internal/infra/config"
	mongostore "villastay/internal/infra/db/mongo"
	ginserver "villastay/internal/infra/http/gin"
	"villastay/internal/infra/obs"
	"villastay/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration load failed", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	gateway := buildGateway(cfg, logger)
	validator := validate.New()
	handlers := ginserver.Handlers{
		Property: ginserver.PropertyHandler{Store: gateway, Validate: validator},
		Booking:  ginserver.BookingHandler{Store: gateway, Validate: validator},
		Seed:     ginserver.SeedHandler{Store: gateway, Logger: logger},
		Diag: ginserver.DiagHandler{
			Store:           gateway,
			DatabaseURLSet:  cfg.DatabaseURL != "",
			DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
		},
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return gateway.Ping(pingCtx)
		},
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// buildGateway connects to mongo when DATABASE_URL is set; otherwise
// the process serves with a permanently unavailable store.
func buildGateway(cfg config.Config, logger *slog.Logger) store.Gateway {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, store gateway unavailable")
		return store.Unavailable{}
	}
	client, err := mongostore.New(cfg.DatabaseURL, cfg.DatabaseName, cfg.StoreTimeout)
	if err != nil {
		logger.Error("mongo connect failed, store gateway unavailable", "error", err)
		return store.Unavailable{}
	}
	logger.Info("mongo connected", "database", cfg.DatabaseName)
	return mongostore.NewStore(client, cfg.StoreTimeout)
}
