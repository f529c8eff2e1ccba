package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnalyzeRequest is the request to analyze a code snippet. The language
// hint is accepted for compatibility; detection is always model-driven.
type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

// Analyze runs a code analysis and persists the result.
// POST /api/analyze
func (h *Handler) Analyze(c echo.Context) error {
	ctx := c.Request().Context()

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	record, err := h.service.HandleAnalysisRequest(ctx, req.Code)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":            record.AnalysisID,
		"language":      record.Result.Language,
		"confidence":    record.Result.Confidence,
		"overview":      record.Result.Overview,
		"issues":        record.Result.Issues,
		"optimizations": record.Result.Optimizations,
		"metrics":       record.Result.Metrics,
	})
}

// DetectLanguageRequest is the request to detect a snippet's language.
type DetectLanguageRequest struct {
	Code string `json:"code"`
}

// DetectLanguage identifies the language of a code snippet.
// POST /api/detect-language
func (h *Handler) DetectLanguage(c echo.Context) error {
	ctx := c.Request().Context()

	var req DetectLanguageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	detection, err := h.service.DetectLanguage(ctx, req.Code)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, detection)
}

// GetAnalysis returns a stored analysis record.
// GET /api/analyses/:id
func (h *Handler) GetAnalysis(c echo.Context) error {
	ctx := c.Request().Context()

	record, err := h.service.GetAnalysis(ctx, c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, record)
}
