package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Renderer writes parse results as JSON or Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(result *ParseResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	return nil
}

// RenderMarkdown writes the draft as a Markdown article skeleton
func (r *Renderer) RenderMarkdown(result *ParseResult, path string) error {
	var b strings.Builder
	draft := result.Draft

	if draft.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", draft.Title)
	}
	if result.Headline != "" {
		fmt.Fprintf(&b, "> Suggested headline: %s\n\n", result.Headline)
	}
	if draft.Subtitle != "" {
		fmt.Fprintf(&b, "## %s\n\n", draft.Subtitle)
	}

	for _, bullet := range draft.Bullets {
		fmt.Fprintf(&b, "- %s\n", bullet)
	}
	if len(draft.Bullets) > 0 {
		b.WriteString("\n")
	}

	if draft.PlaceQuery != "" {
		fmt.Fprintf(&b, "**%s**: ", draft.PlaceQuery)
	}
	if draft.Body != "" {
		b.WriteString(draft.Body)
		b.WriteString("\n")
	}

	if len(result.Places) > 0 {
		b.WriteString("\n---\n\nResolved locations:\n\n")
		for _, place := range result.Places {
			fmt.Fprintf(&b, "- %s (%.5f, %.5f)\n", place.DisplayName, place.Lat, place.Lon)
		}
	}

	if r.includeFooter {
		b.WriteString("\n---\n\n_Draft extracted by dateline; review before publishing._\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write Markdown: %w", err)
	}

	return nil
}

// RenderSummary prints a digest of the result to stdout
func (r *Renderer) RenderSummary(result *ParseResult) {
	draft := result.Draft

	fmt.Println()
	if draft.Title != "" {
		fmt.Printf("Title:     %s\n", draft.Title)
	}
	if draft.Subtitle != "" {
		fmt.Printf("Subtitle:  %s\n", draft.Subtitle)
	}
	for i, bullet := range draft.Bullets {
		fmt.Printf("Bullet %d:  %s\n", i+1, bullet)
	}
	if draft.PlaceQuery != "" {
		fmt.Printf("Dateline:  %s\n", draft.PlaceQuery)
	}
	if result.Headline != "" {
		fmt.Printf("Headline:  %s (suggested)\n", result.Headline)
	}
	if len(result.Places) > 0 {
		fmt.Printf("Location:  %s\n", result.Places[0].DisplayName)
	}
	if draft.Body != "" {
		fmt.Printf("Body:      %d characters\n", len(draft.Body))
	}
	fmt.Println()
}
