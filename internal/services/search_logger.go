package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type SearchLogger struct {
	logger *slog.Logger
}

func NewSearchLogger(logger *slog.Logger) SearchLoggerInterface {
	return &SearchLogger{
		logger: logger,
	}
}

func (sl *SearchLogger) LogSearchStarted(ctx context.Context, accountID uuid.UUID, query string) {
	sl.logger.InfoContext(ctx, "search started",
		slog.String("event_type", "search_started"),
		slog.String("account_id", accountID.String()),
		slog.Int("query_length", len(query)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogSearchCompleted(ctx context.Context, accountID uuid.UUID, tool string, durationMs int64) {
	sl.logger.InfoContext(ctx, "search completed",
		slog.String("event_type", "search_completed"),
		slog.String("account_id", accountID.String()),
		slog.String("tool", tool),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogSearchFailed(ctx context.Context, accountID uuid.UUID, errorMsg string, durationMs int64) {
	sl.logger.WarnContext(ctx, "search failed",
		slog.String("event_type", "search_failed"),
		slog.String("account_id", accountID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogToolDispatched(ctx context.Context, tool string, args map[string]any, rowCount int, durationMs int64) {
	sl.logger.InfoContext(ctx, "tool dispatched",
		slog.String("event_type", "tool_dispatched"),
		slog.String("tool", tool),
		slog.Any("arguments", args),
		slog.Int("row_count", rowCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogToolFailed(ctx context.Context, tool string, args map[string]any, errorMsg string) {
	sl.logger.WarnContext(ctx, "tool failed",
		slog.String("event_type", "tool_failed"),
		slog.String("tool", tool),
		slog.Any("arguments", args),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	sl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogAccountSeeded(ctx context.Context, accountID uuid.UUID, count int) {
	sl.logger.InfoContext(ctx, "account seeded",
		slog.String("event_type", "account_seeded"),
		slog.String("account_id", accountID.String()),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *SearchLogger) LogAccountCleared(ctx context.Context, accountID uuid.UUID, deleted int64) {
	sl.logger.InfoContext(ctx, "account cleared",
		slog.String("event_type", "account_cleared"),
		slog.String("account_id", accountID.String()),
		slog.Int64("deleted", deleted),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// getTraceID reads the id stored by the request ID middleware.
func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value("trace_id").(string); ok {
		return traceID
	}

	return ""
}
