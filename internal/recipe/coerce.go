package recipe

import (
	"strings"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// Keys recognised inside structured ingredient and step entries.
var (
	ingredientNameKeys = []string{"name", "ingredient", "item"}
	ingredientQtyKeys  = []string{"quantity", "amount", "qty"}
	stepTextKeys       = []string{"instructions", "instruction", "step", "direction", "text"}
)

// CoerceList normalizes any field shape into a list of raw entries.
// Absent and null give an empty list, sequences are returned as is, text is
// split on newlines (or on commas when it is a single line) and any other
// value becomes a one-element list.
func CoerceList(v domain.Value) []domain.Value {
	switch v.Kind {
	case domain.KindAbsent, domain.KindNull:
		return nil
	case domain.KindSequence:
		return v.Items
	case domain.KindString:
		var parts []string
		if strings.Contains(v.Text, "\n") {
			parts = strings.Split(v.Text, "\n")
		} else {
			parts = strings.Split(v.Text, ",")
		}
		out := make([]domain.Value, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, domain.String(p))
			}
		}
		return out
	default:
		return []domain.Value{v}
	}
}

// PlainIngredient renders one ingredient entry as sanitized text.
func PlainIngredient(v domain.Value) string {
	switch v.Kind {
	case domain.KindMapping:
		name := firstText(v, ingredientNameKeys)
		qty := firstText(v, ingredientQtyKeys)
		switch {
		case name != "" && qty != "":
			return Sanitize(qty + " " + name)
		case name != "":
			return Sanitize(name)
		}
		var pieces []string
		for _, f := range v.Fields {
			if isStepKey(f.Key) {
				continue
			}
			if s := strings.TrimSpace(f.Value.Flatten(", ")); s != "" {
				pieces = append(pieces, s)
			}
		}
		return Sanitize(strings.Join(pieces, ", "))
	default:
		return Sanitize(v.Flatten(", "))
	}
}

// PlainStep renders one step entry as sanitized text.
func PlainStep(v domain.Value) string {
	switch v.Kind {
	case domain.KindMapping:
		if s := firstText(v, stepTextKeys); s != "" {
			return Sanitize(s)
		}
		return Sanitize(v.Flatten(". "))
	default:
		return Sanitize(v.Flatten(". "))
	}
}

// firstText returns the first non-blank value among keys, flattened.
func firstText(v domain.Value, keys []string) string {
	for _, k := range keys {
		if fv, ok := v.Get(k); ok {
			if s := strings.TrimSpace(fv.Flatten(" ")); s != "" {
				return s
			}
		}
	}
	return ""
}

func isStepKey(key string) bool {
	for _, k := range stepTextKeys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// hasAnyKey reports whether a mapping uses at least one of keys.
func hasAnyKey(v domain.Value, keys ...[]string) bool {
	for _, group := range keys {
		for _, k := range group {
			if _, ok := v.Get(k); ok {
				return true
			}
		}
	}
	return false
}
