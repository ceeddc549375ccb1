// Package engine runs one recipe generation end to end: it asks the model
// (retrying with a generic idea), walks the parsing stages, falls back to
// prose extraction and finalizes the result. Generate never fails.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
	"github.com/hammamikhairi/recipestudio/internal/ollama"
	"github.com/hammamikhairi/recipestudio/internal/recipe"
)

// Option configures the generator.
type Option func(*Generator)

// WithPromptBuilder replaces the function that wraps an idea into a model
// prompt.
func WithPromptBuilder(build func(idea string) string) Option {
	return func(g *Generator) {
		g.buildPrompt = build
	}
}

// WithFallbackIdea sets the idea used for the retry prompt.
func WithFallbackIdea(idea string) Option {
	return func(g *Generator) {
		g.fallbackIdea = idea
	}
}

// Generator turns an idea into a finalized recipe. It depends only on
// interfaces and is fully testable with fakes.
type Generator struct {
	client       domain.ModelClient
	titles       domain.TitleRegistry
	log          *logger.Logger
	buildPrompt  func(string) string
	fallbackIdea string
}

// stage is one parsing attempt over raw model text.
type stage struct {
	source domain.Source
	parse  func(string) (domain.Value, bool)
}

var stages = []stage{
	{domain.SourceJSON, recipe.Extract},
	{domain.SourceRepaired, recipe.Repair},
	{domain.SourceSalvaged, recipe.Salvage},
}

// New creates a generator. A nil client runs offline: every recipe comes
// from the fallback path. A nil titles registry leaves titles as finalized.
func New(client domain.ModelClient, titles domain.TitleRegistry, log *logger.Logger, opts ...Option) *Generator {
	g := &Generator{
		client:       client,
		titles:       titles,
		log:          log,
		buildPrompt:  ollama.BuildPrompt,
		fallbackIdea: ollama.FallbackIdea,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Offline reports whether the generator has no model client.
func (g *Generator) Offline() bool { return g.client == nil }

// Generate produces a recipe for idea. It always returns a displayable
// recipe: model failures fall through to prose extraction and any panic in
// the pipeline is recovered into a stable recipe built from the idea.
func (g *Generator) Generate(ctx context.Context, idea string) (gen *domain.Generation) {
	idea = strings.TrimSpace(idea)
	gen = &domain.Generation{
		ID:   uuid.NewString(),
		Idea: idea,
	}
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			g.log.Error("generation %s: recovered from panic: %v", gen.ID, r)
			gen.Recipe = recipe.Finalize(recipe.FromProse("", idea), idea, g.titles)
			gen.Source = domain.SourceFallback
			gen.Recovered = true
		}
		gen.Elapsed = time.Since(start)
		g.log.Info("generation %s: %q -> %q (source=%s attempts=%d recovered=%v, %s)",
			gen.ID, idea, gen.Recipe.Title, gen.Source, gen.Attempts, gen.Recovered, gen.Elapsed.Round(time.Millisecond))
	}()

	draft, source, attempts := g.draft(ctx, gen.ID, idea)
	gen.Attempts = attempts
	gen.Source = source
	gen.Recipe = recipe.Finalize(draft, idea, g.titles)
	return gen
}

// draft asks the model once per prompt and returns the first usable record.
// Without one it reads the last non-empty reply as prose.
func (g *Generator) draft(ctx context.Context, id, idea string) (domain.Draft, domain.Source, int) {
	var (
		lastText string
		attempts int
	)

	if g.client != nil {
		for _, prompt := range []string{g.buildPrompt(idea), g.buildPrompt(g.fallbackIdea)} {
			if ctx.Err() != nil {
				g.log.Warn("generation %s: %v, skipping remaining prompts", id, ctx.Err())
				break
			}

			attempts++
			text, err := g.client.Generate(ctx, prompt)
			if strings.TrimSpace(text) != "" {
				lastText = text
			}
			if err != nil {
				g.log.Warn("generation %s: attempt %d: %v", id, attempts, err)
			}
			if text == "" {
				continue
			}

			if d, src, ok := parse(text); ok {
				g.log.Debug("generation %s: attempt %d parsed as %s", id, attempts, src)
				return d, src, attempts
			}
			g.log.Debug("generation %s: attempt %d had no usable record", id, attempts)
		}
	}

	if lastText == "" {
		return recipe.FromProse("", idea), domain.SourceFallback, attempts
	}
	return recipe.FromProse(lastText, idea), domain.SourceProse, attempts
}

// parse runs the structured stages in order.
func parse(text string) (domain.Draft, domain.Source, bool) {
	for _, s := range stages {
		v, ok := s.parse(text)
		if !ok {
			continue
		}
		if d, ok := recipe.DraftFromValue(v); ok {
			return d, s.source, true
		}
	}
	return domain.Draft{}, 0, false
}

// Describe is a one-line summary of a generation for logs and the CLI.
func Describe(gen *domain.Generation) string {
	return fmt.Sprintf("%s via %s in %d attempt(s)", gen.Recipe.Title, gen.Source, gen.Attempts)
}
