package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"milano-insights/internal/config"
	"milano-insights/internal/database"
	"milano-insights/internal/handlers"
	"milano-insights/internal/middleware"
	"milano-insights/internal/repositories"
	"milano-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	neighborhoodRepo := repositories.NewNeighborhoodRepository(db.DB)
	priceRepo := repositories.NewPriceRepository(db.DB)
	populationRepo := repositories.NewPopulationRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	resolver := services.NewResolverService(neighborhoodRepo, metrics)
	if entries, err := resolver.ReloadIndex(); err != nil {
		// resolution endpoints answer 503 until an admin reload succeeds
		slog.Warn("initial index load failed", "error", err)
	} else {
		slog.Info("neighborhood index loaded", "entries", entries)
	}

	priceService := services.NewPriceService(priceRepo)
	populationService := services.NewPopulationService(populationRepo, resolver)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/api/health"
		},
	}))

	healthHandler := handlers.NewHealthHandler(db)
	neighborhoodHandler := handlers.NewNeighborhoodHandler(priceService, resolver)
	statsHandler := handlers.NewStatsHandler(priceService)
	populationHandler := handlers.NewPopulationHandler(populationService)
	adminHandler := handlers.NewAdminHandler(resolver)

	api := e.Group("/api")
	api.GET("/health", healthHandler.GetHealth)
	api.GET("/quartieri", neighborhoodHandler.GetQuartieri)
	api.GET("/quartieri/:id/timeseries", neighborhoodHandler.GetTimeseries)
	api.GET("/timeseries/compare", neighborhoodHandler.CompareTimeseries)
	api.GET("/semesters", neighborhoodHandler.GetSemesters)
	api.GET("/stats/milano", statsHandler.GetMilanoStats)
	api.GET("/nil/resolve", neighborhoodHandler.ResolveNil)
	api.GET("/zone/:name/nils", neighborhoodHandler.GetZoneNeighborhoods)
	api.GET("/popolazione-quartiere", populationHandler.ListPopulation)
	api.GET("/popolazione-quartiere/:nil", populationHandler.GetPopulationDetail)

	admin := api.Group("/admin", middleware.AdminKey(cfg.Admin.ReloadKey))
	admin.POST("/reload-index", adminHandler.ReloadIndex)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
