package dto

// SearchRequest is the body of POST /api/ai-search.
type SearchRequest struct {
	Query     string `json:"query" validate:"required,search_query"`
	AccountID string `json:"account_id" validate:"required,account_id"`
}

// SearchResponse carries the assistant's answer. Tool names the query that
// produced it and is empty when the model answered directly.
type SearchResponse struct {
	NLResponse string `json:"nl_response"`
	Tool       string `json:"tool,omitempty"`
}

// ToolInfo describes one catalog entry for GET /api/tools.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type ListToolsResponse struct {
	Tools []ToolInfo `json:"tools"`
	Count int        `json:"count"`
}
