// Package export flattens a recipe into Markdown for the terminal and the
// clipboard.
package export

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// Markdown renders r as a Markdown document.
func Markdown(r domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "*Servings: %d • Time: %d min*\n\n", r.Servings, r.TimeMinutes)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}

	b.WriteString("## Ingredients\n\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}

	b.WriteString("\n## Steps\n\n")
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}
