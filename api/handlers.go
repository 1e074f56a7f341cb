// Package api exposes the documentation search service over HTTP.
package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devref/docsearch/internal/analytics"
	internalerrors "github.com/devref/docsearch/internal/errors"
	"github.com/devref/docsearch/services"
)

// API holds dependencies for API handlers, primarily the search engine.
type API struct {
	engine    services.SearchEngine
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.SearchEngine) *API {
	return &API{
		engine:    engine,
		analytics: analytics.NewService(),
	}
}

// SetupRoutes defines all the API routes for the search service.
func SetupRoutes(router *gin.Engine, engine services.SearchEngine) {
	apiHandler := NewAPI(engine)

	// Unexpected panics map to the 500 error envelope
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		SendInternalError(c, nil)
	}))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	apiRoutes := router.Group("/api")
	{
		// Search endpoints
		apiRoutes.POST("/search", apiHandler.SearchHandler)
		apiRoutes.GET("/search/sources", apiHandler.GetSourcesHandler)
		apiRoutes.GET("/search/types", apiHandler.GetTypesHandler)

		// Code example endpoints
		apiRoutes.GET("/code/:id", apiHandler.GetCodeExampleHandler)
		apiRoutes.POST("/code/highlight", apiHandler.HighlightCodeHandler)
	}
}

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query   string                  `json:"query"`
	Filters *services.SearchFilters `json:"filters"`
}

// SearchResponse is the success envelope for search requests.
type SearchResponse struct {
	Success      bool        `json:"success"`
	Query        string      `json:"query"`
	ResultsCount int         `json:"resultsCount"`
	Results      interface{} `json:"results"`
}

// SearchHandler handles search requests against the corpus.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	filters := services.SearchFilters{}
	if req.Filters != nil {
		filters = *req.Filters
	}

	result, err := api.engine.Search(req.Query, filters)
	if err != nil {
		SendInternalError(c, err)
		return
	}

	// Track the event asynchronously to avoid slowing down the response
	event := analytics.SearchEvent{
		Query:        req.Query,
		Intent:       result.Intent,
		ResultCount:  result.Count,
		Filtered:     len(filters.Sources) > 0 || len(filters.Types) > 0,
		ResponseTime: time.Since(startTime),
	}
	go api.analytics.TrackSearchEvent(event)

	c.JSON(http.StatusOK, SearchResponse{
		Success:      true,
		Query:        req.Query,
		ResultsCount: result.Count,
		Results:      result.Results,
	})
}

// GetSourcesHandler returns the distinct documentation sources in
// first-occurrence order.
func (api *API) GetSourcesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sources": api.engine.Sources(),
	})
}

// GetTypesHandler returns the distinct content types in first-occurrence
// order.
func (api *API) GetTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"types":   api.engine.Types(),
	})
}

// GetCodeExampleHandler looks up code examples by document id or example
// id. Document ids win; a bare example id returns that single example.
func (api *API) GetCodeExampleHandler(c *gin.Context) {
	id := c.Param("id")

	result, err := api.engine.CodeExamplesByID(id)
	if err != nil {
		if errors.Is(err, internalerrors.ErrCodeExampleNotFound) {
			SendError(c, http.StatusNotFound, "Code example not found")
			return
		}
		SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"codeExample": result,
	})
}

// HighlightRequest defines the structure for highlight requests.
type HighlightRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// HighlightCodeHandler highlights a code snippet. Highlighting failures
// degrade to the original code; this endpoint never returns 500 for an
// unsupported language.
func (api *API) HighlightCodeHandler(c *gin.Context) {
	var req HighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, "Code and language are required")
		return
	}

	if req.Code == "" || req.Language == "" {
		SendError(c, http.StatusBadRequest, "Code and language are required")
		return
	}

	highlighted := api.engine.Highlight(req.Code, req.Language)
	if highlighted.Fallback {
		log.Printf("Highlighting fell back to raw code for language %q", req.Language)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"highlightedCode": highlighted.Code,
	})
}

// HealthCheckHandler provides a simple liveness endpoint with no
// dependency checks.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "DocSearch backend is running",
	})
}

// GetAnalyticsHandler returns aggregated search analytics.
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.DashboardData())
}
