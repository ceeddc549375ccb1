package recipe

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

var (
	bulletGlyphs = strings.NewReplacer("•", "-", "◦", "-", "‣", "-", "▪", "-", "·", "-")

	ingredientSection = regexp.MustCompile(`(?is)\bingredients?\s*[:\n]+(.*?)(?:\n\s*(?:steps?|method|directions?|instructions?)\s*:|\z)`)
	stepSection       = regexp.MustCompile(`(?is)\b(?:steps?|method|directions?|instructions?)\s*[:\n]+(.*)`)
	ingredientHeading = regexp.MustCompile(`(?im)^\s*ingredients?\s*:`)

	bulletLine   = regexp.MustCompile(`^\s*[-*]\s+`)
	numberedLine = regexp.MustCompile(`^\s*\d+[).\s-]+`)
)

// FromProse reads a recipe out of plain text using section labels and line
// markers. It never fails: missing sections fall back to bullet or numbered
// lines anywhere in the text, and then to the default lists. Title and
// description come from the idea; servings and time use the defaults.
func FromProse(text, idea string) domain.Draft {
	cleaned := bulletGlyphs.Replace(text)

	ingredients := proseIngredients(cleaned)
	if len(ingredients) == 0 {
		ingredients = domain.DefaultIngredients()
	}
	steps := proseSteps(cleaned)
	if len(steps) == 0 {
		steps = domain.DefaultSteps()
	}

	return domain.Draft{
		Title:       domain.String(DefaultTitle(idea)),
		Description: domain.String(DefaultDescription(idea)),
		Servings:    domain.Number("2"),
		TimeMinutes: domain.Number("20"),
		Ingredients: domain.Strings(ingredients...),
		Steps:       domain.Strings(steps...),
	}
}

func proseIngredients(text string) []string {
	var out []string
	if m := ingredientSection.FindStringSubmatch(text); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			if line = strings.Trim(line, " -*\t\r\n"); line != "" {
				out = append(out, line)
			}
		}
		return out
	}

	for _, line := range strings.Split(text, "\n") {
		if bulletLine.MatchString(line) {
			if line = strings.Trim(line, " -*\t\r\n"); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

func proseSteps(text string) []string {
	var out []string
	if m := stepSection.FindStringSubmatch(text); m != nil {
		block := m[1]
		if loc := ingredientHeading.FindStringIndex(block); loc != nil {
			block = block[:loc[0]]
		}
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(numberedLine.ReplaceAllString(strings.TrimSpace(line), ""))
			if line != "" {
				out = append(out, line)
			}
		}
		return out
	}

	for _, line := range strings.Split(text, "\n") {
		if numberedLine.MatchString(line) {
			if line = strings.TrimSpace(numberedLine.ReplaceAllString(line, "")); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}
