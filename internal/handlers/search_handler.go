package handlers

import (
	"errors"
	"net/http"
	"strings"

	"transaction-insights/internal/dto"
	apperrors "transaction-insights/internal/errors"
	"transaction-insights/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SearchHandler serves natural-language questions about an account's transactions.
type SearchHandler struct {
	searchService services.SearchServiceInterface
}

func NewSearchHandler(searchService services.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search answers a question about one account
// @Summary Ask about transactions
// @Description Routes the question to a transaction query and returns a short narrative answer
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Question and account"
// @Success 200 {object} dto.SearchResponse "Narrative answer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Token is scoped to another account"
// @Failure 500 {object} errors.ErrorResponse "SEARCH_001 - Search failed"
// @Failure 503 {object} errors.ErrorResponse "LLM_001 - Language model unavailable"
// @Router /api/ai-search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("account_id: must be a valid account id (UUID)"))
	}

	result, err := h.searchService.Search(c.Request().Context(), strings.TrimSpace(req.Query), accountID)
	if err != nil {
		return sendSearchError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		NLResponse: result.Summary,
		Tool:       result.Tool,
	})
}

// sendSearchError keeps the underlying message in details. An open LLM
// circuit is reported as 503 so clients can back off.
func sendSearchError(c echo.Context, err error) error {
	code := apperrors.SearchFailed
	switch {
	case errors.Is(err, services.ErrLLMUnavailable):
		code = apperrors.LLMUnavailable
	case errors.Is(err, services.ErrToolNotFound):
		code = apperrors.SearchUnknownTool
	}

	response := apperrors.NewSearchError(code, err, getTraceID(c))
	return c.JSON(response.GetHTTPStatus(), response)
}
