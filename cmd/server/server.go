package main

import (
	"net/http"

	"auroramart/internal/app"
	"auroramart/internal/handlers"
	"auroramart/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// newServer registers middleware and routes. gatherer backs /metrics.
func newServer(c *app.Components, db *gorm.DB, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) *echo.Echo {
	cfg := c.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(c.Metrics)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(middleware.HeaderConfig{
		HSTSMaxAge:    cfg.Security.HSTSMaxAge,
		CatalogMaxAge: cfg.Security.CatalogCacheMaxAge,
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.UserIDHeader, middleware.TraceIDHeader},
	}))

	health := handlers.NewHealthCheckHandler(db, map[string]handlers.ArtifactCheck{
		app.ArtifactClassifier: c.Classifier.Available,
		app.ArtifactRules:      func() bool { return c.ArtifactStatus()[app.ArtifactRules] },
	})
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	recommendations := handlers.NewRecommendationHandler(c.Recommendation, c.Resolver, c.Metrics, cfg.Recommendation.MaxLimit)
	categories := handlers.NewCategoryHandler(c.Categories, c.Resolver)

	api := e.Group("/api/v1", limiter.Middleware(), middleware.UserContext())
	api.GET("/recommendations", recommendations.GetRecommendations)
	api.GET("/recommendations/complete-the-set", recommendations.GetCompleteTheSet)
	api.GET("/categories", categories.ListCategories)
	api.GET("/categories/:category/products", categories.BrowseCategory)

	return e
}
