// Package domain defines the core types and interfaces for the recipe studio.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// Default values a finalized Recipe falls back to.
const (
	DefaultServings    = 2
	DefaultTimeMinutes = 20
	DefaultTitle       = "Chef's Quick Weeknight Dish"
	DefaultDescription = "A tasty, no-fuss recipe."
)

// DefaultIngredients returns a fresh copy of the fallback ingredient list.
func DefaultIngredients() []string {
	return []string{"Salt", "Pepper", "Olive oil"}
}

// DefaultSteps returns a fresh copy of the fallback step list.
func DefaultSteps() []string {
	return []string{"Combine ingredients and cook to taste."}
}

// Recipe is a finalized, display-safe recipe. Every field is populated:
// Title and Description are non-empty and not placeholders, Ingredients and
// Steps hold at least one plain-text entry each.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Servings    int      `json:"servings"`
	TimeMinutes int      `json:"time_minutes"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// Draft is an unvalidated recipe as produced by any parsing stage. Fields
// keep whatever shape the model used until the finalizer coerces them.
type Draft struct {
	Title       Value
	Description Value
	Servings    Value
	TimeMinutes Value
	Ingredients Value
	Steps       Value
}

// IsEmpty reports whether no field of the draft is present.
func (d Draft) IsEmpty() bool {
	for _, v := range []Value{d.Title, d.Description, d.Servings, d.TimeMinutes, d.Ingredients, d.Steps} {
		if !v.IsAbsent() {
			return false
		}
	}
	return true
}

// Source records which pipeline stage produced a recipe.
type Source int

const (
	// SourceJSON means the model's text contained valid JSON.
	SourceJSON Source = iota
	// SourceRepaired means the regex repairer fixed near-JSON.
	SourceRepaired
	// SourceSalvaged means the structural JSON repair library fixed it.
	SourceSalvaged
	// SourceProse means the recipe was read out of plain text.
	SourceProse
	// SourceFallback means the recipe was synthesised after a failure.
	SourceFallback
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceJSON:
		return "json"
	case SourceRepaired:
		return "repaired"
	case SourceSalvaged:
		return "salvaged"
	case SourceProse:
		return "prose"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Generation is the outcome of one generate request.
type Generation struct {
	ID        string
	Idea      string
	Recipe    Recipe
	Source    Source
	Attempts  int  // model calls made
	Recovered bool // true when the catastrophic-failure path produced the recipe
	Elapsed   time.Duration
}
