package pipeline

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"dateline/internal/cache"
	"dateline/internal/extract"
	"dateline/internal/llm"
	"dateline/internal/model"
	"dateline/internal/places"
	"dateline/internal/redact"
)

// Pipeline orchestrates the full paste-to-draft flow: extraction, optional
// LLM headline suggestion, optional place resolution.
type Pipeline struct {
	extractor *extract.DraftExtractor
	redactor  *redact.Redactor
	rewriter  *llm.Rewriter  // nil when no provider configured
	resolver  *places.Client // nil when place resolution disabled
	renderer  *Renderer
	config    *model.Config
	log       zerolog.Logger
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config, log zerolog.Logger) *Pipeline {
	redactor := redact.NewRedactor(cfg.Tenant)

	var rewriter *llm.Rewriter
	if cfg.LLM.Provider != "" {
		r, err := llm.NewRewriter(llm.ConfigFromModel(cfg.LLM, cfg.HTTP), redactor)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize LLM provider")
		} else {
			rewriter = r
		}
	}

	var resolver *places.Client
	if cfg.Places.Enabled {
		resolver = places.NewClient(cfg.Places, cfg.HTTP, newSearchCache(cfg.Cache))
	}

	return &Pipeline{
		extractor: extract.NewDraftExtractor(cfg.Tenant),
		redactor:  redactor,
		rewriter:  rewriter,
		resolver:  resolver,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
		log:       log,
	}
}

// newSearchCache builds the cache layer for location search results
func newSearchCache(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir == "" {
		return cache.NewMemoryCache(cfg.MemoryTTL, 10*cfg.MemoryTTL)
	}
	return cache.NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}

// ParseResult contains a parsed draft plus any enrichments
type ParseResult struct {
	Draft    *model.Draft   `json:"draft"`
	Headline string         `json:"headline,omitempty"` // LLM suggestion, when warranted
	Places   []places.Place `json:"places,omitempty"`   // Candidate dateline locations
}

// ParseText turns pasted copy into a draft. Extraction itself never
// fails; the enrichment steps log and continue on error so a flaky
// network can never lose a reporter's paste.
func (p *Pipeline) ParseText(ctx context.Context, raw string) (*ParseResult, error) {
	draft := p.extractor.Extract(raw)
	p.log.Debug().
		Str("title", draft.Title).
		Int("bullets", len(draft.Bullets)).
		Str("place_query", draft.PlaceQuery).
		Msg("extracted draft")

	result := &ParseResult{Draft: draft}

	if p.rewriter != nil && p.rewriter.IsEnabled() && p.needsHeadline(draft) {
		resp, err := p.rewriter.SuggestHeadline(ctx, draft)
		if err != nil {
			p.log.Warn().Err(err).Msg("headline suggestion failed")
		} else {
			result.Headline = resp.Text
			p.log.Debug().Str("headline", resp.Text).Str("model", resp.Model).Msg("suggested headline")
		}
	}

	if p.resolver != nil && draft.HasDateline() {
		found, err := p.resolver.Search(ctx, draft.PlaceQuery)
		if err != nil {
			p.log.Warn().Err(err).Str("query", draft.PlaceQuery).Msg("place resolution failed")
		} else {
			result.Places = found
		}
	}

	return result, nil
}

// RewriteText redacts and rewrites raw copy through the configured provider
func (p *Pipeline) RewriteText(ctx context.Context, raw string) (string, error) {
	if !p.RewriteEnabled() {
		return "", fmt.Errorf("LLM rewriter is disabled (no provider configured)")
	}

	resp, err := p.rewriter.RewriteBody(ctx, raw)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// RewriteEnabled reports whether an LLM provider is configured
func (p *Pipeline) RewriteEnabled() bool {
	return p.rewriter != nil && p.rewriter.IsEnabled()
}

// needsHeadline decides whether the extracted title warrants an LLM
// suggestion: overlong title, no title at all (with copy present), or
// bullets that read like sentences
func (p *Pipeline) needsHeadline(draft *model.Draft) bool {
	limit := p.config.LLM.HeadlineRuneLimit
	if limit <= 0 {
		limit = 80
	}

	if draft.Title == "" {
		return draft.Body != ""
	}
	if utf8.RuneCountInString(draft.Title) > limit {
		return true
	}
	for _, b := range draft.Bullets {
		if utf8.RuneCountInString(b) > limit {
			return true
		}
	}
	return false
}

// RenderResult renders the parse result to the specified outputs
func (p *Pipeline) RenderResult(result *ParseResult, jsonPath string, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return err
		}
		p.log.Debug().Str("path", jsonPath).Msg("wrote JSON draft")
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return err
		}
		p.log.Debug().Str("path", mdPath).Msg("wrote Markdown draft")
	}

	return nil
}

// Summary prints a human-readable digest of the result to stdout
func (p *Pipeline) Summary(result *ParseResult) {
	p.renderer.RenderSummary(result)
}
