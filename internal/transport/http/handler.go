// Package http provides the HTTP transport for the analysis service.
package http

import (
	"errors"
	"net/http"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
	"github.com/Prasannaverse13/FixMyCode/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/analyze", h.Analyze)
	e.POST("/api/detect-language", h.DetectLanguage)
	e.GET("/api/analyses/:id", h.GetAnalysis)

	e.POST("/api/chat", h.Chat)
	e.GET("/api/chat/:sessionId", h.GetChatHistory)
	e.POST("/api/chat/new-session", h.NewSession)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// errorJSON maps the error taxonomy to status codes: invalid input is the
// caller's fault (400), everything else is a server-side failure (500).
func errorJSON(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	logrus.WithError(err).Error("request failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
