package reasoner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
)

// completionServer returns an httptest server that answers every chat
// completion with the given content string, capturing the last request.
func completionServer(t *testing.T, completionContent string, lastReq *ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(lastReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		resp := ChatCompletionResponse{
			ID:      "c1",
			Object:  "chat.completion",
			Created: 1,
			Model:   lastReq.Model,
			Choices: []Choice{
				{Index: 0, Message: &ChatMessage{Role: "assistant", Content: completionContent}, FinishReason: "stop"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGatewayAnalyze(t *testing.T) {
	analysisJSON := `{"language":"go","confidence":98,"overview":"A small program.","issues":[],"optimizations":[],"metrics":{"qualityScore":88,"complexity":"low","maintainability":90}}`
	var gotReq ChatCompletionRequest
	server := completionServer(t, analysisJSON, &gotReq)
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	analysis, err := g.Analyze(context.Background(), "package main")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if analysis.Language != "go" || analysis.Confidence != 98 {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
	if analysis.Metrics.QualityScore != 88 {
		t.Fatalf("unexpected metrics: %+v", analysis.Metrics)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != domain.RoleSystem {
		t.Fatalf("first message should be the system prompt, got role %s", gotReq.Messages[0].Role)
	}
	if gotReq.ResponseFormat["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %+v", gotReq.ResponseFormat)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.1 {
		t.Fatalf("unexpected temperature: %+v", gotReq.Temperature)
	}
}

func TestGatewayAnalyzeMalformedContent(t *testing.T) {
	var gotReq ChatCompletionRequest
	server := completionServer(t, "not json", &gotReq)
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	_, err := g.Analyze(context.Background(), "package main")

	var contract *domain.ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected ContractError, got %T: %v", err, err)
	}
}

func TestGatewayAnalyzeNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`)
	}))
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	_, err := g.Analyze(context.Background(), "package main")

	var contract *domain.ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected ContractError, got %T: %v", err, err)
	}
}

func TestGatewayAnalyzeEmptyContent(t *testing.T) {
	var gotReq ChatCompletionRequest
	server := completionServer(t, "", &gotReq)
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	_, err := g.Analyze(context.Background(), "package main")

	var contract *domain.ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected ContractError, got %T: %v", err, err)
	}
}

func TestGatewayDetectLanguage(t *testing.T) {
	var gotReq ChatCompletionRequest
	server := completionServer(t, `{"language":"python","confidence":91}`, &gotReq)
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	detection, err := g.DetectLanguage(context.Background(), "print('hi')")
	if err != nil {
		t.Fatalf("DetectLanguage failed: %v", err)
	}
	if detection.Language != "python" || detection.Confidence != 91 {
		t.Fatalf("unexpected detection: %+v", detection)
	}
	if gotReq.ResponseFormat["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %+v", gotReq.ResponseFormat)
	}
}

func TestGatewayConversePrependsPersona(t *testing.T) {
	var gotReq ChatCompletionRequest
	server := completionServer(t, "Sure, let me explain.", &gotReq)
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	reply, err := g.Converse(context.Background(), []ChatMessage{
		{Role: domain.RoleUser, Content: "what does this loop do?"},
	})
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if reply != "Sure, let me explain." {
		t.Fatalf("reply not verbatim: %q", reply)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("expected persona + user turn, got %d messages", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != domain.RoleSystem {
		t.Fatalf("first turn should be the persona system turn, got %s", gotReq.Messages[0].Role)
	}
	if gotReq.Messages[1].Content != "what does this loop do?" {
		t.Fatalf("user turn not preserved: %+v", gotReq.Messages[1])
	}
	if gotReq.MaxTokens == nil || *gotReq.MaxTokens != 1000 {
		t.Fatalf("unexpected max_tokens: %+v", gotReq.MaxTokens)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %+v", gotReq.Temperature)
	}
	if gotReq.ResponseFormat != nil {
		t.Fatalf("chat should not request a response format: %+v", gotReq.ResponseFormat)
	}
}

func TestGatewayConverseUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := NewHTTPGateway(NewClient(server.URL, "", time.Second), "m")
	_, err := g.Converse(context.Background(), []ChatMessage{{Role: domain.RoleUser, Content: "hi"}})

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.Status != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", upstream.Status)
	}
}
