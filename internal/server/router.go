package server

import (
	"net/http"

	"transaction-insights/internal/config"
	"transaction-insights/internal/handlers"
	"transaction-insights/internal/middleware"
	"transaction-insights/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const maxBodySize = "64K"

// Handlers groups everything the router mounts. Dev is nil outside
// development and Verifier is nil when bearer-token auth is disabled.
type Handlers struct {
	Search   *handlers.SearchHandler
	Tools    *handlers.ToolsHandler
	Health   *handlers.HealthCheckHandler
	Docs     *handlers.DocsHandler
	Dev      *handlers.DevHandler
	Verifier services.TokenVerifierInterface
	Metrics  http.Handler
}

func NewRouter(cfg *config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.IPExtractor = ipExtractor(cfg.Server.TrustProxy)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", h.Health.HealthCheck)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}
	e.GET("/docs", h.Docs.ServeScalarUI)
	e.GET("/docs/openapi.json", h.Docs.ServeOpenAPI)

	api := e.Group("/api", middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	// account-scoped routes: search and the dev seeding endpoints
	var accountScoped []echo.MiddlewareFunc
	if h.Verifier != nil {
		accountScoped = append(accountScoped,
			middleware.RequireAccountToken(h.Verifier),
			middleware.RequireAccountScope(),
		)
	}
	api.POST("/ai-search", h.Search.Search, accountScoped...)
	api.GET("/tools", h.Tools.ListTools)

	if h.Dev != nil {
		dev := api.Group("/dev")
		dev.POST("/accounts/:accountId/seed", h.Dev.SeedAccount, accountScoped...)
		dev.DELETE("/accounts/:accountId/seed", h.Dev.ClearAccount, accountScoped...)
	}

	return e
}

// ipExtractor decides which address the rate limiter keys on. Forwarding
// headers are only honoured behind a proxy, and then only from private or
// loopback hops.
func ipExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}
