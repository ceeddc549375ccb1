// Package storage holds the in-memory state of one studio session.
package storage

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.TitleRegistry = (*MemoryStore)(nil)
	_ domain.RecipeStore   = (*MemoryStore)(nil)
)

// MemoryStore keeps the title registry and the recipe on screen. It lives
// as long as the process. Safe for concurrent access.
type MemoryStore struct {
	mu      sync.RWMutex
	titles  map[string]int
	current *domain.Recipe
	log     *logger.Logger
}

// NewMemoryStore creates an empty session store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		titles: make(map[string]int),
		log:    log,
	}
}

// Unique records title and returns it unchanged the first time it is seen
// (ignoring case). Later occurrences get a " (vN)" suffix where N is the
// occurrence count.
func (s *MemoryStore) Unique(title string) string {
	key := strings.ToLower(strings.TrimSpace(title))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.titles[key]++
	n := s.titles[key]
	if n == 1 {
		return title
	}
	out := fmt.Sprintf("%s (v%d)", title, n)
	s.log.Debug("title %q seen %d times, using %q", title, n, out)
	return out
}

// SetCurrent replaces the recipe on screen.
func (s *MemoryStore) SetCurrent(r *domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = r
}

// Current returns the recipe on screen.
func (s *MemoryStore) Current() (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, domain.ErrNotFound
	}
	return s.current, nil
}

// ClearCurrent forgets the recipe on screen. The title registry is kept.
func (s *MemoryStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.log.Debug("cleared current recipe")
}
