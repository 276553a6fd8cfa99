package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"transaction-insights/internal/llm"
)

const (
	narrativeSystemPrompt = "You are a helpful financial assistant."
	narrativeSeparator    = "--------------------------------------------------"
)

type NarrativeService struct {
	client          llm.Client
	defaultCurrency string
}

func NewNarrativeService(client llm.Client, defaultCurrency string) NarrativeServiceInterface {
	return &NarrativeService{
		client:          client,
		defaultCurrency: defaultCurrency,
	}
}

func (n *NarrativeService) Summarize(ctx context.Context, result any) (string, error) {
	resp, err := n.client.Complete(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			llm.SystemMessage(narrativeSystemPrompt),
			llm.UserMessage(n.buildPrompt(result)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}

	return resp.Content, nil
}

func (n *NarrativeService) buildPrompt(result any) string {
	var b strings.Builder
	b.WriteString("You are a helpful financial assistant. Based on the following financial data, ")
	b.WriteString("provide a concise 2-3 sentence summary addressing the user as 'you'. ")
	b.WriteString("Focus on key insights and avoid overly technical language.\n\n")
	b.WriteString("The default currency is in " + n.defaultCurrency + ".\n")
	b.WriteString("Financial Data:\n")
	b.WriteString(narrativeSeparator + "\n")
	b.WriteString(renderResult(result) + "\n")
	b.WriteString(narrativeSeparator + "\n\n")
	b.WriteString("Please provide your summary.")
	return b.String()
}

func renderResult(result any) string {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(data)
}
