package extract

import (
	"strings"

	"dateline/internal/model"
	"dateline/internal/text"
)

// DraftExtractor turns freeform pasted news copy into a structured draft.
// It is pure: no I/O, no shared state, and it never fails. Malformed
// input degrades to a draft whose body is the trimmed input.
type DraftExtractor struct {
	tenant model.Tenant
}

// NewDraftExtractor creates a draft extractor for the given tenant
func NewDraftExtractor(tenant model.Tenant) *DraftExtractor {
	return &DraftExtractor{tenant: tenant}
}

// Extract parses pasted copy into a draft. Rich-text pastes that arrive
// as HTML are flattened to plain lines first.
func (e *DraftExtractor) Extract(raw string) *model.Draft {
	normalized := text.NormalizeNewlines(raw)
	if LooksLikeHTML(normalized) {
		normalized = FlattenHTML(normalized)
	}

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = text.StripOuterStars(line)
	}

	datelineIdx := DetectDateLine(lines)
	blocks := SegmentBlocks(lines, datelineIdx)

	draft := &model.Draft{
		Title:    blocks.Title,
		Subtitle: blocks.Subtitle,
		Bullets:  blocks.Bullets,
		Body:     blocks.Body,
	}

	if datelineIdx >= 0 {
		draft.PlaceQuery = ExtractPlace(lines[datelineIdx], e.tenant)
	}

	// Nothing after the date line (or no date line at all): keep the
	// whole paste as the body so no copy is ever lost.
	if draft.Body == "" {
		draft.Body = strings.TrimSpace(normalized)
	}

	return draft
}
