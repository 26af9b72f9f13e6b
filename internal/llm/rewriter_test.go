package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"dateline/internal/model"
	"dateline/internal/redact"
)

// mockProvider records the request it receives and returns a canned response
type mockProvider struct {
	lastReq  RewriteRequest
	response string
	err      error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Rewrite(ctx context.Context, req RewriteRequest) (*RewriteResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &RewriteResponse{Text: m.response, Model: "mock-model", TokensUsed: 10}, nil
}

func (m *mockProvider) IsAvailable(ctx context.Context) bool { return true }

func newTestRewriter(provider Provider, tenant model.Tenant, redactInput bool) *Rewriter {
	cfg := DefaultConfig()
	cfg.RedactInput = redactInput
	return &Rewriter{
		provider: provider,
		redactor: redact.NewRedactor(tenant),
		config:   cfg,
	}
}

func TestRewriter_Disabled(t *testing.T) {
	r, err := NewRewriter(DefaultConfig(), redact.NewRedactor(model.Tenant{}))
	if err != nil {
		t.Fatalf("NewRewriter: %v", err)
	}

	if r.IsEnabled() {
		t.Error("rewriter with empty provider should be disabled")
	}
	if r.ProviderName() != "" {
		t.Errorf("ProviderName = %q, want empty", r.ProviderName())
	}
	if _, err := r.RewriteBody(context.Background(), "some copy"); err == nil {
		t.Error("RewriteBody on disabled rewriter should fail")
	}
}

func TestRewriter_RedactsBeforeSending(t *testing.T) {
	mock := &mockProvider{response: "rewritten copy"}
	tenant := model.Tenant{Name: "Kaburlu News"}
	r := newTestRewriter(mock, tenant, true)

	resp, err := r.RewriteBody(context.Background(), "a\nb\nc\nKaburlu News covered the story on 07/01/2024 here")
	if err != nil {
		t.Fatalf("RewriteBody: %v", err)
	}
	if resp.Text != "rewritten copy" {
		t.Errorf("Text = %q, want %q", resp.Text, "rewritten copy")
	}
	if strings.Contains(strings.ToLower(mock.lastReq.Text), "kaburlu") {
		t.Errorf("tenant name reached the provider: %q", mock.lastReq.Text)
	}
	if strings.Contains(mock.lastReq.Text, "07/01/2024") {
		t.Errorf("date token reached the provider: %q", mock.lastReq.Text)
	}
}

func TestRewriter_EmptyAfterRedaction(t *testing.T) {
	mock := &mockProvider{response: "should not be called"}
	r := newTestRewriter(mock, model.Tenant{Name: "Kaburlu"}, true)

	_, err := r.RewriteBody(context.Background(), "Kaburlu")
	if err == nil {
		t.Fatal("expected error when redaction leaves nothing")
	}
	if mock.lastReq.Text != "" {
		t.Errorf("provider was called with %q", mock.lastReq.Text)
	}
}

func TestRewriter_EmptyResponse(t *testing.T) {
	mock := &mockProvider{response: ""}
	r := newTestRewriter(mock, model.Tenant{}, true)

	if _, err := r.RewriteBody(context.Background(), "plain copy"); err == nil {
		t.Error("expected error on empty provider response")
	}
}

func TestRewriter_ProviderError(t *testing.T) {
	mock := &mockProvider{err: fmt.Errorf("rate limited")}
	r := newTestRewriter(mock, model.Tenant{}, true)

	if _, err := r.RewriteBody(context.Background(), "plain copy"); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestRewriter_SuggestHeadline(t *testing.T) {
	mock := &mockProvider{response: "కొత్త పథకంతో రైతులకు ఊరట"}
	r := newTestRewriter(mock, model.Tenant{}, true)

	draft := &model.Draft{
		Title:    "headline that runs far too long for a mobile push notification to carry",
		Subtitle: "subtitle",
		Bullets:  []string{"point one", "point two"},
		Body:     "the body copy",
	}

	resp, err := r.SuggestHeadline(context.Background(), draft)
	if err != nil {
		t.Fatalf("SuggestHeadline: %v", err)
	}
	if resp.Text != "కొత్త పథకంతో రైతులకు ఊరట" {
		t.Errorf("Text = %q", resp.Text)
	}
	if mock.lastReq.Task != TaskHeadline {
		t.Errorf("Task = %q, want %q", mock.lastReq.Task, TaskHeadline)
	}
	for _, part := range []string{"subtitle", "point one", "the body copy"} {
		if !strings.Contains(mock.lastReq.Text, part) {
			t.Errorf("prompt input missing %q: %q", part, mock.lastReq.Text)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	headline := BuildPrompt(TaskHeadline, "copy here")
	if !strings.Contains(headline, "headline") || !strings.Contains(headline, "copy here") {
		t.Errorf("headline prompt malformed: %q", headline)
	}

	rewrite := BuildPrompt(TaskRewrite, "copy here")
	if !strings.Contains(rewrite, "Rewrite") || !strings.Contains(rewrite, "copy here") {
		t.Errorf("rewrite prompt malformed: %q", rewrite)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"quoted headline"`, "quoted headline"},
		{"  padded  ", "padded"},
		{"“smart quotes”", "smart quotes"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := cleanResponse(tt.input); got != tt.want {
			t.Errorf("cleanResponse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		wantErr  bool
		wantNil  bool
	}{
		{"empty is disabled", "", "", false, true},
		{"openai without key", "openai", "", true, false},
		{"openai with key", "openai", "sk-test", false, false},
		{"anthropic without key", "anthropic", "", true, false},
		{"ollama needs no key", "ollama", "", false, false},
		{"unknown provider", "bard", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Provider = tt.provider
			cfg.APIKey = tt.apiKey

			p, err := NewProvider(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (p == nil) != tt.wantNil {
				t.Errorf("NewProvider = %v, wantNil %v", p, tt.wantNil)
			}
		})
	}
}
