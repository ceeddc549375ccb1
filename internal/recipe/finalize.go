package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// Placeholder phrases models emit instead of real content. Compared
// lower-cased with any trailing period removed.
var (
	titlePlaceholders = map[string]bool{
		"untitled":        true,
		"untitled recipe": true,
		"recipe":          true,
		"recipe title":    true,
		"title":           true,
		"new recipe":      true,
	}
	descriptionPlaceholders = map[string]bool{
		"a delicious dish created by ai": true,
		"description":                    true,
		"recipe description":             true,
		"a short description":            true,
	}
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// Finalize coerces a draft into a Recipe that satisfies every display
// invariant. Weak or missing fields are replaced with values derived from
// the idea. When titles is non-nil the final title is passed through it
// exactly once, after all other normalization.
func Finalize(d domain.Draft, idea string, titles domain.TitleRegistry) domain.Recipe {
	r := domain.Recipe{
		Title:       Sanitize(d.Title.Flatten(" ")),
		Description: Sanitize(d.Description.Flatten(" ")),
		Servings:    asInt(d.Servings, domain.DefaultServings),
		TimeMinutes: asInt(d.TimeMinutes, domain.DefaultTimeMinutes),
		Ingredients: ingredientEntries(d.Ingredients),
		Steps:       stepEntries(d.Steps),
	}

	if r.Title == "" || isPlaceholder(r.Title, titlePlaceholders) {
		r.Title = DefaultTitle(idea)
	}
	if r.Description == "" || isPlaceholder(r.Description, descriptionPlaceholders) {
		r.Description = DefaultDescription(idea)
	}
	if len(r.Ingredients) == 0 {
		r.Ingredients = domain.DefaultIngredients()
	}
	if len(r.Steps) == 0 {
		r.Steps = domain.DefaultSteps()
	}

	if titles != nil {
		r.Title = titles.Unique(r.Title)
	}
	return r
}

func isPlaceholder(s string, set map[string]bool) bool {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	return set[key]
}

// asInt parses an integer-like value. Numbers truncate toward zero, text
// uses its leading integer ("30 minutes"). Anything else, and any value
// below one, yields def.
func asInt(v domain.Value, def int) int {
	var n int
	switch v.Kind {
	case domain.KindNumber:
		f, err := strconv.ParseFloat(v.Text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
			return def
		}
		n = int(f)
	case domain.KindString:
		m := leadingInt.FindString(strings.TrimSpace(v.Text))
		if m == "" {
			return def
		}
		parsed, err := strconv.Atoi(m)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}
	if n < 1 {
		return def
	}
	return n
}

// ingredientEntries coerces and plainifies the ingredient field.
func ingredientEntries(v domain.Value) []string {
	var out []string
	for _, item := range expandMapping(v, true, ingredientNameKeys, ingredientQtyKeys, stepTextKeys) {
		if s := PlainIngredient(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stepEntries coerces and plainifies the step field.
func stepEntries(v domain.Value) []string {
	var out []string
	for _, item := range expandMapping(v, false, stepTextKeys) {
		if s := PlainStep(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// expandMapping turns a keyed list such as {"flour": "2 cups"} or
// {"1": "Mix"} into one entry per pair; withKey appends the key to the
// value. A mapping that uses any of the entry keys is a single structured
// entry and goes through CoerceList.
func expandMapping(v domain.Value, withKey bool, entryKeys ...[]string) []domain.Value {
	if v.Kind != domain.KindMapping || hasAnyKey(v, entryKeys...) {
		return CoerceList(v)
	}

	out := make([]domain.Value, 0, len(v.Fields))
	for _, f := range v.Fields {
		text := strings.TrimSpace(f.Value.Flatten(" "))
		if withKey {
			text = strings.TrimSpace(text + " " + f.Key)
		}
		if text != "" {
			out = append(out, domain.String(text))
		}
	}
	return out
}
