package reasoner

import (
	"context"
	"fmt"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
)

// MockGateway is a deterministic Gateway implementation for running the
// service without the real reasoning endpoint.
type MockGateway struct{}

// NewMockGateway creates a new mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// Ensure MockGateway implements Gateway.
var _ Gateway = (*MockGateway)(nil)

// Analyze returns a canned analysis.
func (m *MockGateway) Analyze(ctx context.Context, code string) (*domain.CodeAnalysis, error) {
	line := 1
	return &domain.CodeAnalysis{
		Language:   "plaintext",
		Confidence: 50,
		Overview:   fmt.Sprintf("[MOCK] Reviewed %d bytes of code.", len(code)),
		Issues: []domain.Issue{
			{
				Type:        "style",
				Severity:    "low",
				Title:       "Mock finding",
				Description: "This finding was produced by the mock gateway.",
				Suggestion:  "Run against a real reasoning endpoint.",
				Line:        &line,
			},
		},
		Optimizations: []domain.Optimization{
			{
				Title:       "Mock optimization",
				Description: "This suggestion was produced by the mock gateway.",
				Impact:      "none",
			},
		},
		Metrics: domain.Metrics{
			QualityScore:    75,
			Complexity:      "low",
			Maintainability: 80,
		},
	}, nil
}

// DetectLanguage returns a canned detection.
func (m *MockGateway) DetectLanguage(ctx context.Context, code string) (*domain.LanguageDetection, error) {
	return &domain.LanguageDetection{Language: "plaintext", Confidence: 50}, nil
}

// Converse echoes the last user turn.
func (m *MockGateway) Converse(ctx context.Context, turns []ChatMessage) (string, error) {
	var lastUser string
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == domain.RoleUser {
			lastUser = turns[i].Content
			break
		}
	}
	if lastUser == "" {
		return "[MOCK] This is a mock mentor response.", nil
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock mentor response.", truncate(lastUser, 100)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
