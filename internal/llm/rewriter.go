package llm

import (
	"context"
	"fmt"
	"strings"

	"dateline/internal/model"
	"dateline/internal/redact"
)

// Rewriter wraps an LLM provider behind the privacy filter: every piece of
// copy is redacted before it is turned into a prompt, and a prompt that
// still carries a tenant name is refused rather than sent.
type Rewriter struct {
	provider Provider
	redactor *redact.Redactor
	config   Config
}

// NewRewriter creates a rewriter from configuration. An empty provider
// name yields a disabled rewriter, not an error.
func NewRewriter(config Config, redactor *redact.Redactor) (*Rewriter, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Rewriter{
		provider: provider,
		redactor: redactor,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (r *Rewriter) IsEnabled() bool {
	return r.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (r *Rewriter) ProviderName() string {
	if r.provider == nil {
		return ""
	}
	return r.provider.Name()
}

// RewriteBody rewrites raw article copy into publishable prose
func (r *Rewriter) RewriteBody(ctx context.Context, raw string) (*RewriteResponse, error) {
	return r.run(ctx, TaskRewrite, raw)
}

// SuggestHeadline asks the provider for a short headline for a draft.
// The draft's own title, bullets and body feed the prompt.
func (r *Rewriter) SuggestHeadline(ctx context.Context, draft *model.Draft) (*RewriteResponse, error) {
	var b strings.Builder
	if draft.Title != "" {
		b.WriteString(draft.Title)
		b.WriteString("\n")
	}
	if draft.Subtitle != "" {
		b.WriteString(draft.Subtitle)
		b.WriteString("\n")
	}
	for _, bullet := range draft.Bullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}
	if draft.Body != "" {
		b.WriteString("\n")
		b.WriteString(draft.Body)
	}

	return r.run(ctx, TaskHeadline, b.String())
}

func (r *Rewriter) run(ctx context.Context, task Task, raw string) (*RewriteResponse, error) {
	if r.provider == nil {
		return nil, fmt.Errorf("LLM rewriter is disabled (no provider configured)")
	}

	text := raw
	if r.config.RedactInput {
		text = r.redactor.Redact(text)

		// CRITICAL: nothing tenant-identifying may leave the process
		if leaked := r.redactor.Leaked(text); len(leaked) > 0 {
			return nil, fmt.Errorf("TENANT LEAK: redacted prompt still contains %q", leaked[0])
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("nothing left to send after redaction")
	}

	resp, err := r.provider.Rewrite(ctx, RewriteRequest{
		Text:      text,
		Task:      task,
		Model:     r.config.Model,
		MaxTokens: r.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if resp == nil || resp.Text == "" {
		return nil, fmt.Errorf("empty response from %s", r.provider.Name())
	}

	return resp, nil
}
