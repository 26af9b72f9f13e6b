package extract

import (
	"regexp"
	"strings"

	"dateline/internal/model"
)

// Leading bullet markers: "-", "*", "•", or "1." / "1)"
var bulletMarkerRe = regexp.MustCompile(`^(?:[-*•]+|[0-9]+[.)])\s*`)

// Blocks is the title/subtitle/bullets/body partition of a paste
type Blocks struct {
	Title    string
	Subtitle string
	Bullets  []string
	Body     string
}

// SegmentBlocks partitions lines around the date line. Lines above feed
// title, subtitle and bullets; lines below become the body. The date line
// itself is consumed by neither side. datelineIdx < 0 means every line is
// "above" and the body stays empty.
func SegmentBlocks(lines []string, datelineIdx int) Blocks {
	above := lines
	var below []string
	if datelineIdx >= 0 && datelineIdx < len(lines) {
		above = lines[:datelineIdx]
		below = lines[datelineIdx+1:]
	}

	var blocks Blocks

	compacted := compactLines(above)
	if len(compacted) > 0 {
		blocks.Title = compacted[0]
	}
	if len(compacted) > 1 {
		blocks.Subtitle = compacted[1]
	}
	for _, line := range compacted[min(2, len(compacted)):] {
		if len(blocks.Bullets) >= model.MaxBullets {
			break
		}
		bullet := strings.TrimSpace(bulletMarkerRe.ReplaceAllString(line, ""))
		if bullet != "" {
			blocks.Bullets = append(blocks.Bullets, bullet)
		}
	}

	blocks.Body = strings.Join(compactLines(below), "\n\n")

	return blocks
}

// compactLines trims each line and drops the empty ones
func compactLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
