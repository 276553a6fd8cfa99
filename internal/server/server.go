package server

import (
	"log/slog"

	"transaction-insights/docs"
	"transaction-insights/internal/config"
	"transaction-insights/internal/database"
	"transaction-insights/internal/handlers"
	"transaction-insights/internal/llm"
	"transaction-insights/internal/repositories"
	"transaction-insights/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Build wires repositories, services and handlers over db and returns the
// configured router. Collectors are registered on reg.
func Build(cfg *config.Config, db *database.DB, reg prometheus.Registerer, gatherer prometheus.Gatherer) *echo.Echo {
	logger := services.NewSearchLogger(slog.Default())
	metrics := services.NewPrometheusMetrics(reg)

	// --- LLM ---
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFromLLM(cfg.LLM))
	client := services.NewBreakerClient(llm.NewOpenAIClient(cfg.LLM), breaker, logger, metrics)

	// --- repos & services ---
	catalog := services.DefaultToolRegistry()
	insightRepo := repositories.NewInsightRepository(db.DB)
	dispatcher := services.NewToolDispatcher(catalog, insightRepo, logger, metrics)
	narrative := services.NewNarrativeService(client, cfg.LLM.DefaultCurrency)
	search := services.NewSearchService(client, catalog, dispatcher, narrative, logger, metrics)

	h := Handlers{
		Search:  handlers.NewSearchHandler(search),
		Tools:   handlers.NewToolsHandler(catalog),
		Health:  handlers.NewHealthCheckHandler(db),
		Docs:    handlers.NewDocsHandler(docs.ScalarHTML, docs.OpenAPI),
		Metrics: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}

	if cfg.IsDevelopment() {
		seed := services.NewSeedService(
			repositories.NewTransactionRepository(db.DB),
			services.NewTransactionGenerator(),
			logger,
			metrics,
		)
		h.Dev = handlers.NewDevHandler(seed)
		slog.Info("Development endpoints enabled", "prefix", "/api/dev")
	}

	if cfg.Security.AuthEnabled() {
		h.Verifier = services.NewTokenVerifier(cfg.Security)
		slog.Info("Bearer token account scoping enabled", "issuer", cfg.Security.JWTIssuer)
	}

	return NewRouter(cfg, h)
}
