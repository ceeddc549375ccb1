// Package conversation turns typed input into intents and delivers notices
// back to the user.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser treats any text as a recipe idea unless it is one of a few
// command words.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent string
}

// generatePrefix captures the idea after an explicit generate command.
var generatePrefix = regexp.MustCompile(`(?i)^(?:generate|gen|make)(?:\s+(.*))?$`)

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(reset|clear|new)$`), "reset"},
		{regexp.MustCompile(`(?i)^(copy|cp|yank)$`), "copy"},
		{regexp.MustCompile(`(?i)^(show|again|print)$`), "show"},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), "help"},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), "quit"},
	}
	return p
}

// Parse converts user input into an intent. Empty input is IntentUnknown
// with no payload; callers prompt for an idea.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	if m := generatePrefix.FindStringSubmatch(trimmed); m != nil {
		return &domain.Intent{Type: domain.IntentGenerate, Payload: strings.TrimSpace(m[1])}, nil
	}

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: domain.IntentFromString(rule.intent)}, nil
		}
	}

	return &domain.Intent{Type: domain.IntentGenerate, Payload: trimmed}, nil
}
