package domain

import "context"

// ModelClient sends one prompt to a language model and returns its raw
// text. On failure it may still return whatever partial text was received.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TitleRegistry makes displayed titles unique within a session.
type TitleRegistry interface {
	Unique(title string) string
}

// RecipeStore holds the recipe currently on screen.
type RecipeStore interface {
	SetCurrent(r *Recipe)
	Current() (*Recipe, error)
	ClearCurrent()
}

// Notifier delivers short, dismissible notices to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// IntentParser converts raw user input into an intent.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
