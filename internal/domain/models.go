// Package domain defines the core domain models for the analysis service.
package domain

import (
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage represents a single message in a session transcript.
// Messages are immutable once stored and retrieved in chronological order.
type ChatMessage struct {
	MessageID string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalysisRecord represents the persisted result of one code analysis
// request. Language is empty when detection failed or was omitted.
type AnalysisRecord struct {
	AnalysisID string       `json:"id"`
	Code       string       `json:"code"`
	Language   string       `json:"language,omitempty"`
	Result     CodeAnalysis `json:"result"`
	CreatedAt  time.Time    `json:"createdAt"`
}
