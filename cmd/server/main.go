package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pricepulse/comparator-service/config"
	"github.com/pricepulse/comparator-service/internal/alerts"
	"github.com/pricepulse/comparator-service/internal/engine"
	"github.com/pricepulse/comparator-service/internal/handlers"
	"github.com/pricepulse/comparator-service/internal/ingest"
	"github.com/pricepulse/comparator-service/internal/middleware"
	"github.com/pricepulse/comparator-service/internal/telemetry"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting comparator service")

	ctx := context.Background()

	cleanupTelemetry, err := telemetry.Init(ctx, telemetry.GetConfigFromEnv())
	if err != nil {
		logger.Warn().Err(err).Msg("Telemetry disabled")
		cleanupTelemetry = func(context.Context) error { return nil }
	}

	loader := ingest.NewLoader(cfg.Data.FeedDir)
	snap, report, err := loader.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Data.FeedDir).Msg("Failed to load feeds")
	}
	logger.Info().
		Int("files", report.Files).
		Int("offers", report.Offers).
		Int("discounts", report.Discounts).
		Int("skipped_rows", len(report.Skipped)).
		Msg("Feeds loaded")

	eng := engine.New(&engine.Config{
		SimilarityBand:    cfg.Engine.SimilarityBand,
		SubstituteCutoff:  cfg.Engine.SubstituteCutoff,
		BestDiscountLimit: cfg.Engine.BestDiscountLimit,
	})
	alertSvc := alerts.NewService(alerts.NewStore(), eng)
	handlers.Init(eng, alertSvc, loader, snap)

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	setupMiddleware(router, logger)
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.RequestsPerSecond),
		BurstSize:         cfg.RateLimit.Burst,
	}))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handlers.ListProducts)
			products.GET("/search", handlers.SearchProducts)
			products.GET("/brands", handlers.ListBrands)
			products.GET("/compare", handlers.CompareProducts)
			products.GET("/under", handlers.ProductsUnderPrice)
			products.GET("/unit-price", handlers.ProductsByUnitPrice)
			products.GET("/without-discount", handlers.ProductsWithoutDiscount)
			products.GET("/store/:store", handlers.ProductsByStore)
			products.GET("/category/:category", handlers.ProductsByCategory)
			products.GET("/brand/:brand", handlers.ProductsByBrand)
			products.GET("/:name/stores", handlers.ProductStores)
		}

		prices := v1.Group("/prices")
		{
			prices.GET("/cheapest", handlers.CheapestPrice)
			prices.GET("/history", handlers.PriceHistory)
			prices.GET("/substitutes", handlers.Substitutes)
		}

		basket := v1.Group("/basket")
		{
			basket.POST("/optimize", handlers.OptimizeBasket)
			basket.POST("/invoice", handlers.BasketInvoice)
			basket.POST("/budget", handlers.BudgetBasket)
			basket.POST("/compare-dates", handlers.CompareBasketDates)
		}

		discounts := v1.Group("/discounts")
		{
			discounts.GET("", handlers.ListDiscounts)
			discounts.GET("/store/:store", handlers.DiscountsByStore)
			discounts.GET("/best", handlers.BestDiscounts)
			discounts.GET("/new", handlers.NewDiscounts)
			discounts.GET("/above", handlers.DiscountsAbove)
			discounts.GET("/expiring", handlers.ExpiringDiscounts)
		}

		alertRoutes := v1.Group("/alerts")
		{
			alertRoutes.POST("", handlers.CreateAlert)
			alertRoutes.GET("", handlers.ListAlerts)
			alertRoutes.GET("/triggered", handlers.TriggeredAlerts)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/category-trend", handlers.CategoryTrend)
			stats.GET("/store-index", handlers.StoreIndex)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("/reload", handlers.ReloadFeeds)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := cleanupTelemetry(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Telemetry shutdown failed")
	}

	logger.Info().Msg("Server exited")
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "comparator-service").Logger()
	return &logger
}

func setupMiddleware(router *gin.Engine, logger *zerolog.Logger) {
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")
	})
}
