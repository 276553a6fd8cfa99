package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"transaction-insights/internal/llm"

	"github.com/google/uuid"
)

type SearchResult struct {
	Summary string `json:"nl_response"`
	// Tool is empty when the model answered without calling a tool.
	Tool string `json:"tool,omitempty"`
}

type SearchService struct {
	client     llm.Client
	catalog    ToolCatalogInterface
	dispatcher ToolDispatcherInterface
	narrative  NarrativeServiceInterface
	logger     SearchLoggerInterface
	metrics    MetricsRecorderInterface
}

func NewSearchService(
	client llm.Client,
	catalog ToolCatalogInterface,
	dispatcher ToolDispatcherInterface,
	narrative NarrativeServiceInterface,
	logger SearchLoggerInterface,
	metrics MetricsRecorderInterface,
) SearchServiceInterface {
	return &SearchService{
		client:     client,
		catalog:    catalog,
		dispatcher: dispatcher,
		narrative:  narrative,
		logger:     logger,
		metrics:    metrics,
	}
}

func (s *SearchService) Search(ctx context.Context, query string, accountID uuid.UUID) (*SearchResult, error) {
	start := time.Now()
	s.logger.LogSearchStarted(ctx, accountID, query)

	result, err := s.search(ctx, query, accountID)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime(TimingSearch, duration)

	if err != nil {
		s.logger.LogSearchFailed(ctx, accountID, err.Error(), duration.Milliseconds())
		s.metrics.IncrementCounter(MetricSearchCompleted, map[string]string{"outcome": "failed"})
		return nil, err
	}

	outcome := "direct"
	if result.Tool != "" {
		outcome = "tool"
	}
	s.logger.LogSearchCompleted(ctx, accountID, result.Tool, duration.Milliseconds())
	s.metrics.IncrementCounter(MetricSearchCompleted, map[string]string{"outcome": outcome})
	return result, nil
}

func (s *SearchService) search(ctx context.Context, query string, accountID uuid.UUID) (*SearchResult, error) {
	resp, err := s.client.Complete(ctx, llm.ChatRequest{
		Messages: []llm.Message{llm.UserMessage(query)},
		Tools:    s.catalog.Definitions(),
	})
	if err != nil {
		return nil, fmt.Errorf("error during LLM call: %w", err)
	}

	if len(resp.ToolCalls) == 0 {
		return &SearchResult{Summary: resp.Content}, nil
	}

	// Only the first proposed call is honored.
	call := resp.ToolCalls[0]
	if _, ok := s.catalog.Lookup(call.Name); !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, call.Name)
	}

	var toolResult any
	args, err := parseToolArguments(call.Arguments)
	if err != nil {
		toolResult = ErrorResult(fmt.Errorf("malformed tool arguments: %w", err))
	} else {
		// The caller's account always wins over anything the model supplied.
		args["account_id"] = accountID.String()
		toolResult, err = s.dispatcher.Dispatch(ctx, call.Name, args)
		if err != nil {
			return nil, err
		}
	}

	summary, err := s.narrative.Summarize(ctx, toolResult)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Summary: summary, Tool: call.Name}, nil
}

func parseToolArguments(raw string) (map[string]any, error) {
	args := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return args, nil
	}

	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
