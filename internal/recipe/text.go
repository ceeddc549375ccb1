package recipe

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// DefaultTitle derives a title from the user's idea: the idea in title
// case, or a fixed phrase when the idea is blank.
func DefaultTitle(idea string) string {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return domain.DefaultTitle
	}
	return cases.Title(language.English).String(idea)
}

// DefaultDescription derives a one-sentence description from the idea.
func DefaultDescription(idea string) string {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return domain.DefaultDescription
	}
	return capitalize(idea) + " turned into a balanced, easy-to-cook recipe."
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
