package services

import (
	"context"
	"fmt"
	"time"

	"transaction-insights/internal/models"
	"transaction-insights/internal/repositories"
)

type ToolDispatcher struct {
	catalog ToolCatalogInterface
	repo    repositories.InsightRepositoryInterface
	logger  SearchLoggerInterface
	metrics MetricsRecorderInterface
}

func NewToolDispatcher(
	catalog ToolCatalogInterface,
	repo repositories.InsightRepositoryInterface,
	logger SearchLoggerInterface,
	metrics MetricsRecorderInterface,
) ToolDispatcherInterface {
	return &ToolDispatcher{
		catalog: catalog,
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// Dispatch runs the named tool. Only an unknown name is returned as an
// error; coercion and query failures come back as an ErrorResult value so the
// caller can still summarize them.
func (d *ToolDispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	spec, ok := d.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	start := time.Now()
	rows, err := d.run(ctx, spec, ToolArguments(args))
	duration := time.Since(start)
	d.metrics.RecordProcessingTime(TimingToolDispatch, duration)

	if err != nil {
		d.logger.LogToolFailed(ctx, name, args, err.Error())
		d.metrics.IncrementCounter(MetricToolDispatched, map[string]string{"tool": name, "status": "error"})
		return ErrorResult(err), nil
	}

	d.logger.LogToolDispatched(ctx, name, args, len(rows), duration.Milliseconds())
	d.metrics.IncrementCounter(MetricToolDispatched, map[string]string{"tool": name, "status": "success"})
	return rows, nil
}

func (d *ToolDispatcher) run(ctx context.Context, spec ToolSpec, args ToolArguments) ([]models.Row, error) {
	args = args.WithDefaults(spec.Params)

	accountID, err := args.AccountID()
	if err != nil {
		return nil, err
	}

	query, err := spec.Build(accountID, args)
	if err != nil {
		return nil, err
	}

	return d.repo.Run(ctx, query)
}

// ErrorResult is the value handed to the narrative step when a tool fails.
func ErrorResult(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}
