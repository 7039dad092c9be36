package main

import (
	"log/slog"
	"strconv"

	"personal-finance/internal/config"
	"personal-finance/internal/handlers"
	"personal-finance/internal/middleware"
	"personal-finance/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type routeDeps struct {
	cfg        *config.Config
	db         *gorm.DB
	logger     *slog.Logger
	entry      services.TransactionEntryServiceInterface
	categories services.CategoryPanelServiceInterface
	tokens     services.TokenServiceInterface
	limiter    *middleware.RateLimiter
}

func newServer(deps routeDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  deps.cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, handlers.FormIDHeader, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit(deps.cfg.Storage.MaxReceiptBytes)))

	health := handlers.NewHealthCheckHandler(deps.db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	if deps.cfg.IsDevelopment() && deps.cfg.JWT.PrivateKey != nil {
		dev := handlers.NewDevHandler(deps.tokens)
		api.POST("/dev/token", dev.IssueToken)
	}

	protected := api.Group("", middleware.RequireAuth(deps.tokens), deps.limiter.Middleware())

	entry := handlers.NewTransactionEntryHandler(deps.entry, deps.logger, deps.cfg.Storage.MaxReceiptBytes)
	protected.GET("/funding-targets", entry.ListFundingTargets)
	protected.GET("/categories", entry.ListCategories)
	protected.GET("/transaction-form", entry.GetTransactionForm)
	protected.POST("/transactions", entry.CreateTransaction)
	protected.GET("/transactions", entry.ListTransactions)

	categories := handlers.NewCategoryHandler(deps.categories, deps.logger)
	protected.GET("/categories/panel", categories.GetPanel)
	protected.POST("/categories", categories.CreateCategory)
	protected.POST("/categories/suggestions/:name", categories.SelectSuggestion)
	protected.DELETE("/categories/:id", categories.DeactivateCategory)

	return e
}

// bodyLimit leaves one extra megabyte for form fields next to the largest accepted receipt
func bodyLimit(maxReceiptBytes int64) string {
	const mb = 1 << 20
	return strconv.FormatInt((maxReceiptBytes+mb-1)/mb+1, 10) + "M"
}
