package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DocsHandlerSuite struct {
	suite.Suite
	e       *echo.Echo
	handler *DocsHandler
}

func TestDocsHandler(t *testing.T) {
	suite.Run(t, new(DocsHandlerSuite))
}

func (s *DocsHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.handler = NewDocsHandler(
		[]byte(`<html><script id="api-reference" data-url="/docs/openapi.json"></script></html>`),
		[]byte(`{"openapi":"3.0.3"}`),
	)
}

func (s *DocsHandlerSuite) serve(h echo.HandlerFunc, path, ifNoneMatch string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if ifNoneMatch != "" {
		req.Header.Set("If-None-Match", ifNoneMatch)
	}
	rec := httptest.NewRecorder()
	s.Require().NoError(h(s.e.NewContext(req, rec)))
	return rec
}

func (s *DocsHandlerSuite) TestScalarPage() {
	rec := s.serve(s.handler.ServeScalarUI, "/docs", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "text/html")
	s.Contains(rec.Body.String(), "/docs/openapi.json")
	s.Equal("no-cache", rec.Header().Get("Cache-Control"))
	s.Equal(s.handler.page.etag, rec.Header().Get("ETag"))
}

func (s *DocsHandlerSuite) TestScalarPageNotModified() {
	rec := s.serve(s.handler.ServeScalarUI, "/docs", s.handler.page.etag)
	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.String())

	rec = s.serve(s.handler.ServeScalarUI, "/docs", `"stale"`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DocsHandlerSuite) TestOpenAPIDocument() {
	rec := s.serve(s.handler.ServeOpenAPI, "/docs/openapi.json", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"openapi":"3.0.3"}`, rec.Body.String())
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))

	rec = s.serve(s.handler.ServeOpenAPI, "/docs/openapi.json", s.handler.openAPI.etag)
	s.Equal(http.StatusNotModified, rec.Code)
}

func (s *DocsHandlerSuite) TestMissingAssetsAre404() {
	empty := NewDocsHandler(nil, nil)

	for _, h := range []echo.HandlerFunc{empty.ServeScalarUI, empty.ServeOpenAPI} {
		rec := s.serve(h, "/docs", "")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "SYSTEM_007")
	}
}

func (s *DocsHandlerSuite) TestAssetETag() {
	s.Empty(newAsset(nil).etag)
	s.Equal(newAsset([]byte("a")).etag, newAsset([]byte("a")).etag)
	s.NotEqual(newAsset([]byte("a")).etag, newAsset([]byte("b")).etag)
	s.Len(newAsset([]byte("a")).etag, 34)
}
