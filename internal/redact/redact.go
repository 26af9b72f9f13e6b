// Package redact strips tenant identity and explicit dates from article
// copy before it is forwarded to an external rewriting service. The
// stripper is deliberately conservative: a lead-in line that mentions a
// date is dropped whole rather than risking partial leakage.
package redact

import (
	"regexp"
	"sort"
	"strings"

	"dateline/internal/model"
	"dateline/internal/text"
)

// sensitiveLeadLines is how many lines at the top of a paste are dropped
// outright when they look like a brand or dateline mention
const sensitiveLeadLines = 3

var (
	numericDateRe = regexp.MustCompile(`\b[0-9]{1,2}[/.-][0-9]{1,2}(?:[/.-][0-9]{2,4})?\b`)
	isoDateRe     = regexp.MustCompile(`\b[0-9]{4}-[0-9]{2}-[0-9]{2}\b`)
	dayYearRe     = regexp.MustCompile(`\b[0-9]{1,2},\s*[0-9]{4}\b`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// Redactor removes tenant names and date tokens from raw text
type Redactor struct {
	names []string // tenant names, longest first
}

// NewRedactor creates a redactor for the given tenant
func NewRedactor(tenant model.Tenant) *Redactor {
	names := tenant.Names()
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return &Redactor{names: names}
}

// Redact returns text safe to send to an external rewriting endpoint:
// tenant names gone everywhere, date-bearing lead-in lines dropped,
// inline date tokens stripped, removal artifacts collapsed.
func (r *Redactor) Redact(raw string) string {
	s := text.NormalizeNewlines(raw)

	for _, name := range r.names {
		s = removeFold(s, name)
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i < sensitiveLeadLines && looksSensitive(line) {
			out = append(out, "")
			continue
		}
		line = stripDateTokens(line)
		line = text.CollapseSpaces(line)
		line = text.TrimPunctuationEdges(line)
		out = append(out, line)
	}

	s = strings.Join(out, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Leaked reports which tenant names still occur in s, case-insensitively.
// Used as a final guard before a prompt leaves the process.
func (r *Redactor) Leaked(s string) []string {
	lower := strings.ToLower(s)
	var leaked []string
	for _, name := range r.names {
		if strings.Contains(lower, strings.ToLower(name)) {
			leaked = append(leaked, name)
		}
	}
	return leaked
}

// looksSensitive reports whether a lead-in line mentions a date in any of
// the recognized forms
func looksSensitive(line string) bool {
	return text.ContainsMonth(line) ||
		isoDateRe.MatchString(line) ||
		numericDateRe.MatchString(line) ||
		dayYearRe.MatchString(line)
}

// stripDateTokens removes inline month names and date patterns
func stripDateTokens(line string) string {
	line = text.RemoveMonths(line)
	line = isoDateRe.ReplaceAllString(line, " ")
	line = numericDateRe.ReplaceAllString(line, " ")
	line = dayYearRe.ReplaceAllString(line, " ")
	return line
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
		s = s[:i] + s[i+len(sub):]
	}
}
