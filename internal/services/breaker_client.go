package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transaction-insights/internal/llm"
	"transaction-insights/internal/models"
)

var (
	ErrLLMUnavailable = errors.New("language model unavailable")
)

const llmServiceName = "openai"

// BreakerClient guards an llm.Client with a circuit breaker. Cancelled
// requests are not counted against the upstream.
type BreakerClient struct {
	next    llm.Client
	breaker CircuitBreakerInterface
	logger  SearchLoggerInterface
	metrics MetricsRecorderInterface
}

func NewBreakerClient(next llm.Client, breaker CircuitBreakerInterface, logger SearchLoggerInterface, metrics MetricsRecorderInterface) *BreakerClient {
	return &BreakerClient{
		next:    next,
		breaker: breaker,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *BreakerClient) Complete(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
	before := c.breaker.GetState()
	if c.breaker.IsOpen() {
		c.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"status": "rejected"})
		return llm.ChatResponse{}, fmt.Errorf("%w: %w", ErrLLMUnavailable, ErrCircuitBreakerOpen)
	}

	start := time.Now()
	resp, err := c.next.Complete(ctx, req)
	c.metrics.RecordProcessingTime(TimingLLMRequest, time.Since(start))

	status := "success"
	switch {
	case err == nil:
		c.breaker.RecordSuccess()
	case errors.Is(err, context.Canceled):
		status = "canceled"
	default:
		status = "error"
		c.breaker.RecordFailure()
	}
	c.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"status": status})
	c.observeState(ctx, before)

	return resp, err
}

func (c *BreakerClient) observeState(ctx context.Context, before models.CircuitBreakerState) {
	after := c.breaker.GetState()
	c.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": llmServiceName})
	if after != before {
		c.logger.LogCircuitBreakerStateChange(ctx, llmServiceName, before.String(), after.String())
	}
}
