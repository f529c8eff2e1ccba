package http

import (
	"net/http"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
	"github.com/labstack/echo/v4"
)

// ChatRequest is the request for one chat turn. Context carries the code
// the user is currently working with, embedded verbatim as a system turn.
type ChatRequest struct {
	SessionID string       `json:"sessionId"`
	Message   string       `json:"message"`
	Context   *ChatContext `json:"context,omitempty"`
}

// ChatContext is the optional code context for a chat turn.
type ChatContext struct {
	Code string `json:"code"`
}

// Chat handles one mentor chat turn.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	var codeContext string
	if req.Context != nil {
		codeContext = req.Context.Code
	}

	reply, err := h.service.HandleChatTurn(ctx, req.SessionID, req.Message, codeContext)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"response":  reply,
		"sessionId": req.SessionID,
	})
}

// GetChatHistory returns the transcript for a session in chronological
// order. Unknown sessions return an empty list.
// GET /api/chat/:sessionId
func (h *Handler) GetChatHistory(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.service.GetTranscript(ctx, c.Param("sessionId"))
	if err != nil {
		return errorJSON(c, err)
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	return c.JSON(http.StatusOK, messages)
}

// NewSession mints a fresh session identifier.
// POST /api/chat/new-session
func (h *Handler) NewSession(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"sessionId": h.service.CreateSession(),
	})
}
