package extract

import (
	"dateline/internal/text"
)

// LooksLikeDateLine reports whether a line reads like a newspaper date
// line ("CITY, Month Day:"). A hierarchy word needs a month or a day
// number next to it; a month alone needs a day number. Requiring the
// conjunction avoids false positives on prose that merely mentions a
// month.
func LooksLikeDateLine(line string) bool {
	hierarchy := text.ContainsHierarchy(line)
	month := text.ContainsMonth(line)
	digit := text.HasDigit(line)

	if hierarchy && (month || digit) {
		return true
	}
	return month && digit
}

// DetectDateLine returns the index of the first line satisfying the date
// line predicate, or -1 when none matches. The scan covers every line, not
// just the first few: real pastes bury the date line under a variable
// number of headline and highlight lines. The flip side is that a
// date-like phrase deep in the body can be picked up instead; that is a
// known limitation of the heuristic, kept deliberately.
func DetectDateLine(lines []string) int {
	for i, line := range lines {
		if LooksLikeDateLine(line) {
			return i
		}
	}
	return -1
}
