package recipe

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// jsonSigns are structural characters that must never reach the UI.
	jsonSigns = regexp.MustCompile("[{}\\[\\]`\"]")

	// fieldLabels are schema keys a model sometimes leaks into values.
	fieldLabels = regexp.MustCompile(`(?i)\b(?:title|steps?|ingredients?|description|servings|time_minutes)\s*:\s*`)

	// leadingMarker matches a list bullet or "1." / "1)" numbering.
	leadingMarker = regexp.MustCompile(`^\s*(?:([0-9]+[.)])|[-*•])\s*`)

	whitespaceRun = regexp.MustCompile(`\s+`)
	commaSpacing  = regexp.MustCompile(`\s*,\s*`)
)

// Sanitize turns a free-text field into plain display text: it drops JSON
// punctuation, leaked field labels and a leading list marker, collapses
// whitespace and normalizes comma spacing. Sanitize is idempotent.
func Sanitize(s string) string {
	for {
		next := sanitizePass(s)
		if next == s {
			return next
		}
		s = next
	}
}

// sanitizePass applies every rule once. Later passes can only remove
// characters, so repeating it reaches a fixed point.
func sanitizePass(s string) string {
	s = strings.TrimSpace(s)
	s = jsonSigns.ReplaceAllString(s, "")
	s = fieldLabels.ReplaceAllString(s, "")
	s = stripLeadingMarker(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = commaSpacing.ReplaceAllString(s, ", ")
	return strings.TrimSpace(s)
}

// stripLeadingMarker removes one leading bullet or number marker. A number
// directly followed by a digit ("1.5 cups") is a quantity, not a marker.
func stripLeadingMarker(s string) string {
	m := leadingMarker.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	end := m[1]
	if m[2] >= 0 && m[3] == end {
		if r, _ := utf8.DecodeRuneInString(s[end:]); unicode.IsDigit(r) {
			return s
		}
	}
	return s[end:]
}
