package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/money_transfer_app/internal/adapters/database/memory"
	"github.com/SscSPs/money_transfer_app/internal/core/services"
	"github.com/SscSPs/money_transfer_app/internal/handlers"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
	"github.com/SscSPs/money_transfer_app/internal/platform/config"
	"github.com/SscSPs/money_transfer_app/internal/platform/seed"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limiterstore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Money Transfer API
// @version 1.0
// @description In-memory money transfer ledger service.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The stores are process-wide singletons by construction: built once
	// here and injected everywhere, which keeps tests free to build their own.
	txnRepo := memory.NewTransactionRepository()
	accountRepo := memory.NewAccountRepository(txnRepo)

	if cfg.InsertSampleData {
		if err := seed.InsertSampleData(context.Background(), accountRepo, txnRepo); err != nil {
			logger.Error("Failed to insert sample data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Sample data inserted.")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limiterstore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svcContainer := services.NewServiceContainer(accountRepo, txnRepo)
	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
