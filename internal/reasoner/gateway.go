package reasoner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
)

// Gateway defines the reasoning operations the rest of the service depends
// on. Callers validate their inputs before invocation; the gateway only
// builds prompts, dispatches, and validates what comes back.
type Gateway interface {
	// Analyze reviews a code snippet and returns the structured analysis.
	Analyze(ctx context.Context, code string) (*domain.CodeAnalysis, error)

	// DetectLanguage identifies the programming language of a snippet.
	DetectLanguage(ctx context.Context, code string) (*domain.LanguageDetection, error)

	// Converse sends an ordered turn sequence and returns the assistant
	// reply verbatim. The mentor persona turn is prepended here.
	Converse(ctx context.Context, turns []ChatMessage) (string, error)
}

// Sampling parameters pinned per operation: near-deterministic for the two
// JSON-shaped calls, freer for chat.
var (
	analyzeTemperature = 0.1
	chatTemperature    = 0.7
	chatMaxTokens      = 1000
)

// jsonObjectFormat requests a JSON-shaped completion.
var jsonObjectFormat = map[string]interface{}{"type": "json_object"}

// HTTPGateway implements Gateway against a chat-completion endpoint.
type HTTPGateway struct {
	client *Client
	model  string
}

// Ensure HTTPGateway implements Gateway.
var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway backed by the given client and model.
func NewHTTPGateway(client *Client, model string) *HTTPGateway {
	return &HTTPGateway{client: client, model: model}
}

// Analyze requests a JSON-shaped review of the code.
func (g *HTTPGateway) Analyze(ctx context.Context, code string) (*domain.CodeAnalysis, error) {
	resp, err := g.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: domain.RoleSystem, Content: analyzeSystemPrompt},
			{Role: domain.RoleUser, Content: "Please analyze this code:\n\n" + code},
		},
		Temperature:    &analyzeTemperature,
		ResponseFormat: jsonObjectFormat,
	})
	if err != nil {
		return nil, err
	}

	text, err := content(resp)
	if err != nil {
		return nil, err
	}

	var analysis domain.CodeAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, &domain.ContractError{Detail: fmt.Sprintf("completion content is not valid analysis JSON: %v", err)}
	}

	// Omitted lists are empty, not null.
	if analysis.Issues == nil {
		analysis.Issues = []domain.Issue{}
	}
	if analysis.Optimizations == nil {
		analysis.Optimizations = []domain.Optimization{}
	}
	return &analysis, nil
}

// DetectLanguage requests only the language label and confidence.
func (g *HTTPGateway) DetectLanguage(ctx context.Context, code string) (*domain.LanguageDetection, error) {
	resp, err := g.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: domain.RoleSystem, Content: detectSystemPrompt},
			{Role: domain.RoleUser, Content: "Detect the programming language of this code:\n\n" + code},
		},
		Temperature:    &analyzeTemperature,
		ResponseFormat: jsonObjectFormat,
	})
	if err != nil {
		return nil, err
	}

	text, err := content(resp)
	if err != nil {
		return nil, err
	}

	var detection domain.LanguageDetection
	if err := json.Unmarshal([]byte(text), &detection); err != nil {
		return nil, &domain.ContractError{Detail: fmt.Sprintf("completion content is not valid detection JSON: %v", err)}
	}
	return &detection, nil
}

// Converse prepends the mentor persona turn ahead of the caller-supplied
// sequence and returns the raw assistant text. Nothing is persisted here.
func (g *HTTPGateway) Converse(ctx context.Context, turns []ChatMessage) (string, error) {
	messages := make([]ChatMessage, 0, len(turns)+1)
	messages = append(messages, ChatMessage{Role: domain.RoleSystem, Content: mentorSystemPrompt})
	messages = append(messages, turns...)

	resp, err := g.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: &chatTemperature,
		MaxTokens:   &chatMaxTokens,
	})
	if err != nil {
		return "", err
	}

	return content(resp)
}
