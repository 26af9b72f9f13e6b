package text

import (
	"regexp"
	"strings"
	"unicode"
)

var multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
var spaceBeforePunctRe = regexp.MustCompile(`[ \t]+([,.;:!?])`)

// StripOuterStars removes leading/trailing '*' emphasis markers and the
// whitespace around them. Pasted rich text frequently arrives as
// "*headline*". No-op on empty input.
func StripOuterStars(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return r == '*' || unicode.IsSpace(r)
	})
}

// SanitizePlaceCandidate trims bracket/colon/space edges from a candidate
// place name. Returns "" when no letters remain, so numeric-only or
// punctuation-only fragments never pass as a place.
func SanitizePlaceCandidate(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "()[]{}<>:;| \t")
	s = strings.TrimSpace(s)
	if !HasLetter(s) {
		return ""
	}
	return s
}

// CollapseSpaces folds runs of 2+ spaces/tabs into one space and drops
// the space left behind before punctuation
func CollapseSpaces(s string) string {
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = spaceBeforePunctRe.ReplaceAllString(s, "$1")
	return s
}

// TrimPunctuationEdges strips leading/trailing punctuation runs left
// behind by token removals
func TrimPunctuationEdges(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case ',', '.', ';', ':', '-', '–', '—', '/', '|':
			return true
		}
		return unicode.IsSpace(r)
	})
}

// HasLetter reports whether s contains at least one letter rune
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// HasDigit reports whether s contains an ASCII digit
func HasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// NormalizeNewlines converts CRLF/CR line endings to LF
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
