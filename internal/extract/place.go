package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"dateline/internal/model"
	"dateline/internal/text"
)

var digitRe = regexp.MustCompile(`[0-9]+`)

// ExtractPlace isolates the dateline place from a detected date line.
// Tenant brand names never survive into the result.
func ExtractPlace(dateLine string, tenant model.Tenant) string {
	// Leave only place words: drop colons, digits and month tokens
	s := strings.ReplaceAll(dateLine, ":", " ")
	s = digitRe.ReplaceAllString(s, " ")
	s = text.RemoveMonths(s)

	tokens := splitPlaceTokens(s)
	if len(tokens) == 0 {
		return ""
	}

	place := pickPlace(tokens)
	place = removeTenantNames(place, tenant)
	return text.SanitizePlaceCandidate(place)
}

// pickPlace applies the hierarchy-word positioning rules to a token list
func pickPlace(tokens []string) string {
	hierIdx := -1
	for i, tok := range tokens {
		if text.IsHierarchyToken(tok) {
			hierIdx = i
			break
		}
	}

	switch {
	case hierIdx > 0:
		// "కామారెడ్డి జిల్లా ...": everything before the hierarchy word
		return strings.Join(tokens[:hierIdx], " ")

	case hierIdx == 0:
		// Unusual ordering: hierarchy word first. Take the first
		// following token that is neither hierarchy nor month.
		for _, tok := range tokens[1:] {
			if !text.IsHierarchyToken(tok) && !text.IsMonthToken(tok) {
				return tok
			}
		}
		// Concatenated form: strip the hierarchy word off the token
		return text.StripHierarchyAffixes(tokens[0])

	default:
		// No hierarchy word at all
		for _, tok := range tokens {
			if !text.IsMonthToken(tok) && !text.IsHierarchyToken(tok) {
				return tok
			}
		}
		return ""
	}
}

// PlaceFromLocationDate handles the simpler "place, month day" strings
// returned by the rewriting service: split on the first comma, strip a
// trailing hierarchy word, sanitize.
func PlaceFromLocationDate(locationDate string) string {
	if locationDate == "" {
		return ""
	}

	place := locationDate
	if i := strings.Index(place, ","); i >= 0 {
		place = place[:i]
	}

	tokens := splitPlaceTokens(place)
	if n := len(tokens); n > 0 && text.IsHierarchyToken(tokens[n-1]) {
		// A bare hierarchy word is dropped; a concatenated form like
		// "కామారెడ్డిజిల్లా" keeps its place part.
		if stripped := text.StripHierarchyAffixes(tokens[n-1]); stripped == "" {
			tokens = tokens[:n-1]
		} else {
			tokens[n-1] = stripped
		}
	}
	place = strings.Join(tokens, " ")

	return text.SanitizePlaceCandidate(place)
}

// splitPlaceTokens splits on whitespace, commas, bullets and dashes
func splitPlaceTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', '•', '-', '–', '—':
			return true
		}
		return unicode.IsSpace(r)
	})
}

// removeTenantNames scrubs tenant display/native names, longest first so a
// short name never leaves fragments of a longer one behind
func removeTenantNames(s string, tenant model.Tenant) string {
	names := tenant.Names()
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for _, name := range names {
		s = removeFold(s, name)
	}
	return strings.TrimSpace(s)
}

// removeFold removes every case-insensitive occurrence of sub from s
func removeFold(s, sub string) string {
	if sub == "" {
		return s
	}
	lowerSub := strings.ToLower(sub)
	for {
		i := strings.Index(strings.ToLower(s), lowerSub)
		if i < 0 {
			return s
		}
		s = s[:i] + " " + s[i+len(sub):]
	}
}
