package ollama

import "fmt"

// FallbackIdea is sent when the user's idea produced nothing usable, and
// stands in for a blank idea.
const FallbackIdea = "Create a great new dish."

// SystemStyle pins the model to the recipe schema.
const SystemStyle = `You are a precise culinary assistant. ` +
	`Always respond with ONLY JSON using this exact schema: ` +
	`{"title": str, "description": str, "servings": int, "time_minutes": int, ` +
	`"ingredients": [str], "steps": [str]} ` +
	`Do not include code fences or any text outside the JSON.`

// BuildPrompt wraps a user idea with formatting guidance.
func BuildPrompt(idea string) string {
	if idea == "" {
		idea = FallbackIdea
	}
	return fmt.Sprintf("User idea: %s\n"+
		"Return JSON only (no code fences). Use realistic servings/time, "+
		"a short description, a clear ingredient list, and 5-10 concise steps.", idea)
}
