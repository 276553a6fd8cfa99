package services

import (
	"context"
	"time"

	"transaction-insights/internal/llm"
	"transaction-insights/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SearchServiceInterface answers a natural-language question about one account.
type SearchServiceInterface interface {
	Search(ctx context.Context, query string, accountID uuid.UUID) (*SearchResult, error)
}

// ToolDispatcherInterface runs a catalog tool by name.
type ToolDispatcherInterface interface {
	Dispatch(ctx context.Context, name string, args map[string]any) (any, error)
}

type NarrativeServiceInterface interface {
	Summarize(ctx context.Context, result any) (string, error)
}

type ToolCatalogInterface interface {
	ToolCatalog() []ToolDescriptor
	Definitions() []llm.ToolDefinition
	Lookup(name string) (ToolSpec, bool)
}

type TransactionGeneratorInterface interface {
	GenerateTransactions(accountID uuid.UUID, count int, startDate, endDate time.Time, startingBalance decimal.Decimal) []models.Transaction
}

// SeedServiceInterface writes and clears development data for an account.
type SeedServiceInterface interface {
	SeedAccount(ctx context.Context, accountID uuid.UUID, count, days int) (*SeedResult, error)
	ClearAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type TokenVerifierInterface interface {
	VerifyAccessToken(tokenString string) (*models.AccountClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type SearchLoggerInterface interface {
	LogSearchStarted(ctx context.Context, accountID uuid.UUID, query string)
	LogSearchCompleted(ctx context.Context, accountID uuid.UUID, tool string, durationMs int64)
	LogSearchFailed(ctx context.Context, accountID uuid.UUID, errorMsg string, durationMs int64)
	LogToolDispatched(ctx context.Context, tool string, args map[string]any, rowCount int, durationMs int64)
	LogToolFailed(ctx context.Context, tool string, args map[string]any, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogAccountSeeded(ctx context.Context, accountID uuid.UUID, count int)
	LogAccountCleared(ctx context.Context, accountID uuid.UUID, deleted int64)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
