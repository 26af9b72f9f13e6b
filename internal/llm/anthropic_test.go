package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicProvider_Rewrite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %q, want /v1/messages", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "sk-ant-test" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("missing anthropic-version header")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.System == "" {
			t.Error("request missing system prompt")
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"content": [{"type": "text", "text": "\"rewritten copy\""}],
			"model": "claude-3-5-sonnet-20241022",
			"usage": {"input_tokens": 20, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.APIKey = "sk-ant-test"
	cfg.BaseURL = server.URL

	p, err := NewAnthropicProvider(cfg)
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}

	resp, err := p.Rewrite(context.Background(), RewriteRequest{Text: "raw copy", Task: TaskRewrite})
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	// Quote marks around the model output are trimmed
	if resp.Text != "rewritten copy" {
		t.Errorf("Text = %q, want %q", resp.Text, "rewritten copy")
	}
	if resp.TokensUsed != 25 {
		t.Errorf("TokensUsed = %d, want 25", resp.TokensUsed)
	}
}

func TestAnthropicProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid key"}}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.APIKey = "sk-ant-bad"
	cfg.BaseURL = server.URL

	p, err := NewAnthropicProvider(cfg)
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}

	if _, err := p.Rewrite(context.Background(), RewriteRequest{Text: "copy"}); err == nil {
		t.Error("expected error on 401 response")
	}
}
