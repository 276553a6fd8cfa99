package handlers

import (
	"net/http"

	"transaction-insights/internal/dto"
	"transaction-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// ToolsHandler exposes the query catalog offered to the language model.
type ToolsHandler struct {
	catalog services.ToolCatalogInterface
}

func NewToolsHandler(catalog services.ToolCatalogInterface) *ToolsHandler {
	return &ToolsHandler{catalog: catalog}
}

// ListTools returns every tool with its parameter schema, in catalog order
// @Summary List insight tools
// @Tags Search
// @Produce json
// @Success 200 {object} dto.ListToolsResponse "Tool catalog"
// @Router /api/tools [get]
func (h *ToolsHandler) ListTools(c echo.Context) error {
	descriptors := h.catalog.ToolCatalog()

	tools := make([]dto.ToolInfo, len(descriptors))
	for i, d := range descriptors {
		tools[i] = dto.ToolInfo{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		}
	}

	return c.JSON(http.StatusOK, dto.ListToolsResponse{
		Tools: tools,
		Count: len(tools),
	})
}
