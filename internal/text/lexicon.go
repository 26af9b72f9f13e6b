package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shared month and administrative-hierarchy word lists. The date-line
// detector, the place extractor, and the redactor all match against these
// tables; keeping a single copy prevents the three from drifting apart.

var englishMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug",
	"sept", "sep", "oct", "nov", "dec",
}

var teluguMonths = []string{
	"జనవరి", "ఫిబ్రవరి", "మార్చి", "ఏప్రిల్", "మే", "జూన్",
	"జులై", "జూలై", "ఆగస్టు", "ఆగస్ట్", "సెప్టెంబర్", "సెప్టెంబరు",
	"అక్టోబర్", "అక్టోబరు", "నవంబర్", "నవంబరు", "డిసెంబర్", "డిసెంబరు",
}

var englishHierarchy = []string{"district", "mandal", "village", "state"}

var teluguHierarchy = []string{"జిల్లా", "మండలం", "గ్రామం", "రాష్ట్రం"}

// English words get \b anchors; RE2's \b is ASCII-only, so Telugu words are
// matched by hand with a letter-neighbor check instead (hasWord below).
var englishMonthRe = regexp.MustCompile(`(?i)\b(` + strings.Join(englishMonths, "|") + `)\b`)
var englishHierarchyRe = regexp.MustCompile(`(?i)\b(` + strings.Join(englishHierarchy, "|") + `)\b`)

// hasWord reports whether w occurs in s bounded by non-letters
func hasWord(s, w string) bool {
	for i := 0; ; {
		j := strings.Index(s[i:], w)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(w)
		if !letterBefore(s, start) && !letterAt(s, end) {
			return true
		}
		i = start + 1
	}
}

// removeWord blanks out every bounded occurrence of w in s
func removeWord(s, w string) string {
	var b strings.Builder
	for {
		j := strings.Index(s, w)
		if j < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := j + len(w)
		if !letterBefore(s, j) && !letterAt(s, end) {
			b.WriteString(s[:j])
			b.WriteByte(' ')
		} else {
			b.WriteString(s[:end])
		}
		s = s[end:]
	}
}

func letterBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r)
}

func letterAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}

// ContainsMonth reports whether s mentions a month name in English or Telugu
func ContainsMonth(s string) bool {
	if englishMonthRe.MatchString(s) {
		return true
	}
	for _, m := range teluguMonths {
		if hasWord(s, m) {
			return true
		}
	}
	return false
}

// ContainsHierarchy reports whether s mentions an administrative-hierarchy
// word (district/mandal/village/state or a Telugu equivalent)
func ContainsHierarchy(s string) bool {
	if englishHierarchyRe.MatchString(s) {
		return true
	}
	for _, h := range teluguHierarchy {
		if hasWord(s, h) {
			return true
		}
	}
	return false
}

// IsMonthToken reports whether a single token is a month name
func IsMonthToken(tok string) bool {
	for _, m := range englishMonths {
		if strings.EqualFold(tok, m) {
			return true
		}
	}
	for _, m := range teluguMonths {
		if tok == m {
			return true
		}
	}
	return false
}

// IsHierarchyToken reports whether a token is, or ends/starts with, a
// hierarchy word. Concatenated forms like "కామారెడ్డిజిల్లా" count.
func IsHierarchyToken(tok string) bool {
	for _, h := range englishHierarchy {
		if strings.EqualFold(tok, h) {
			return true
		}
	}
	for _, h := range teluguHierarchy {
		if tok == h || strings.HasSuffix(tok, h) || strings.HasPrefix(tok, h) {
			return true
		}
	}
	return false
}

// StripHierarchyAffixes removes hierarchy words glued onto a token
// (suffix or prefix), handling concatenated place+hierarchy forms
func StripHierarchyAffixes(tok string) string {
	for _, h := range teluguHierarchy {
		tok = strings.TrimSuffix(tok, h)
		tok = strings.TrimPrefix(tok, h)
	}
	for _, h := range englishHierarchy {
		if strings.EqualFold(tok, h) {
			return ""
		}
		lower := strings.ToLower(tok)
		if strings.HasSuffix(lower, h) {
			tok = tok[:len(tok)-len(h)]
		} else if strings.HasPrefix(lower, h) {
			tok = tok[len(h):]
		}
	}
	return strings.TrimSpace(tok)
}

// RemoveMonths blanks out month-name tokens in s
func RemoveMonths(s string) string {
	s = englishMonthRe.ReplaceAllString(s, " ")
	for _, m := range teluguMonths {
		s = removeWord(s, m)
	}
	return s
}
