// Package llm holds the chat-completion contract used by the search pipeline
// and its OpenAI implementation.
package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// ToolDefinition describes one callable tool. Parameters is a JSON Schema object.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolCall is a tool invocation proposed by the model. Arguments is the raw
// JSON text the model produced and may be malformed.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

type ChatRequest struct {
	Messages []Message
	Tools    []ToolDefinition
}

type ChatResponse struct {
	Content      string
	ToolCalls    []ToolCall
	FinishReason string
}

// Client sends one chat completion and waits for the reply.
type Client interface {
	Complete(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
