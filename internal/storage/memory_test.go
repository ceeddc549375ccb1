package storage

import (
	"sync"
	"testing"

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
)

func TestUnique(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))

	steps := []struct {
		in   string
		want string
	}{
		{"Garlic Bread", "Garlic Bread"},
		{"Garlic Bread", "Garlic Bread (v2)"},
		{"garlic bread", "garlic bread (v3)"},
		{"Tomato Soup", "Tomato Soup"},
		{"GARLIC BREAD", "GARLIC BREAD (v4)"},
	}

	for _, s := range steps {
		if got := store.Unique(s.in); got != s.want {
			t.Fatalf("Unique(%q) = %q, want %q", s.in, got, s.want)
		}
	}
}

func TestUniqueConcurrent(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))

	const n = 50
	var wg sync.WaitGroup
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Unique("Stew")
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for r := range results {
		if seen[r] {
			t.Fatalf("duplicate title %q", r)
		}
		seen[r] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct titles, got %d", n, len(seen))
	}
}

func TestCurrentRecipe(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))

	if _, err := store.Current(); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	r := &domain.Recipe{Title: "Soup"}
	store.SetCurrent(r)
	got, err := store.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got != r {
		t.Fatalf("expected stored recipe, got %+v", got)
	}

	store.Unique("Soup")
	store.ClearCurrent()
	if _, err := store.Current(); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}

	// Reset keeps the registry.
	if got := store.Unique("Soup"); got != "Soup (v2)" {
		t.Fatalf("registry was reset: got %q", got)
	}
}
