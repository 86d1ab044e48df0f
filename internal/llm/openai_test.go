package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func TestOpenAIProvider_HappyPathWithSchema(t *testing.T) {
	var gotBody map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4.1-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"name":"Ada","age":36}`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}

	p := newTestOpenAI(t, handler)
	req := SingleTurn("Be brief.", "Who?", 256)
	req.Schema = testSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.OutputTokens != 25 {
		t.Fatalf("output tokens = %d, want 25", resp.Usage.OutputTokens)
	}
	if gotBody["model"] != "gpt-4.1-mini" {
		t.Fatalf("model sent = %v", gotBody["model"])
	}
	if _, ok := gotBody["response_format"]; !ok {
		t.Fatal("expected response_format in request body")
	}
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4.1-mini",
			"choices": []map[string]any{{
				"message":       map[string]any{"role": "assistant", "content": `{"name":"Ada"}`},
				"finish_reason": "stop",
			}},
		})
	}
	p := newTestOpenAI(t, handler)
	req := SingleTurn("", "Who?", 256)
	req.Schema = testSchema()
	_, err := p.Generate(context.Background(), req)
	if !IsKind(err, KindInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "slow down", "type": "rate_limit_error"},
		})
	}
	p := newTestOpenAI(t, handler)
	_, err := p.Generate(context.Background(), SingleTurn("", "x", 10))
	if !IsKind(err, KindRateLimited) {
		t.Fatalf("expected rate limit, got %T (%v)", err, err)
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.5-flash" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
	if p.name != "openrouter" {
		t.Fatalf("name = %q, want openrouter", p.name)
	}
}
