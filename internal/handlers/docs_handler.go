package handlers

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"

	"transaction-insights/internal/errors"

	"github.com/labstack/echo/v4"
)

// asset is an embedded document with a precomputed strong ETag.
type asset struct {
	body []byte
	etag string
}

func newAsset(body []byte) asset {
	if len(body) == 0 {
		return asset{}
	}
	sum := md5.Sum(body)
	return asset{body: body, etag: `"` + hex.EncodeToString(sum[:]) + `"`}
}

// notModified sets the ETag and reports whether the client copy is current.
func (a asset) notModified(c echo.Context) bool {
	c.Response().Header().Set("ETag", a.etag)
	return c.Request().Header.Get("If-None-Match") == a.etag
}

// DocsHandler serves the Scalar reference page and the OpenAPI document it loads.
type DocsHandler struct {
	page    asset
	openAPI asset
}

func NewDocsHandler(scalarHTML, openAPI []byte) *DocsHandler {
	return &DocsHandler{page: newAsset(scalarHTML), openAPI: newAsset(openAPI)}
}

// ServeScalarUI godoc
// @Summary API reference page
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	if h.page.body == nil {
		return SendError(c, errors.SystemNotFound, errors.WithDetails("API reference page is not available"))
	}
	// the page references a CDN bundle, so no caching of the page itself
	c.Response().Header().Set("Cache-Control", "no-cache")
	if h.page.notModified(c) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTMLBlob(http.StatusOK, h.page.body)
}

// ServeOpenAPI returns the bundled OpenAPI 3 document.
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	if h.openAPI.body == nil {
		return SendError(c, errors.SystemNotFound, errors.WithDetails("OpenAPI document is not available"))
	}
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	if h.openAPI.notModified(c) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.openAPI.body)
}
