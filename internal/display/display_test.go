package display

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

func testModel(inputCh chan string) model {
	return newModel(inputCh, make(chan struct{}), func(string) {}, nil)
}

func TestNoticeClearsOnlyLatest(t *testing.T) {
	m := testModel(make(chan string, 1))

	next, cmd := m.Update(noticeMsg("first"))
	m = next.(model)
	if cmd == nil {
		t.Fatal("expected a clear timer")
	}
	next, _ = m.Update(noticeMsg("second"))
	m = next.(model)

	// The first notice's timer fires late and must not clear the second.
	next, _ = m.Update(clearNoticeMsg(1))
	m = next.(model)
	if m.notice != "second" {
		t.Fatalf("notice = %q, want %q", m.notice, "second")
	}

	next, _ = m.Update(clearNoticeMsg(2))
	m = next.(model)
	if m.notice != "" {
		t.Fatalf("notice not cleared: %q", m.notice)
	}
}

func TestOverlayInView(t *testing.T) {
	m := testModel(make(chan string, 1))

	next, _ := m.Update(overlayMsg("Generating .."))
	m = next.(model)
	if !strings.Contains(m.View(), "Generating ..") {
		t.Fatalf("overlay missing from view:\n%s", m.View())
	}

	next, _ = m.Update(overlayMsg(""))
	m = next.(model)
	if strings.Contains(m.View(), "Generating") {
		t.Fatalf("overlay still shown:\n%s", m.View())
	}
}

func TestEnterForwardsInput(t *testing.T) {
	inputCh := make(chan string, 2)
	m := testModel(inputCh)
	m.input.SetValue("garlic bread")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	if got := <-inputCh; got != "garlic bread" {
		t.Fatalf("forwarded %q", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("input not reset: %q", m.input.Value())
	}
}

func TestRecipeCardColumns(t *testing.T) {
	r := domain.Recipe{
		Title:       "Big Salad",
		Description: "Lots of things.",
		Servings:    4,
		TimeMinutes: 15,
		Steps:       []string{"Toss"},
	}
	for i := 1; i <= 10; i++ {
		r.Ingredients = append(r.Ingredients, fmt.Sprintf("Leaf %d", i))
	}

	card := RecipeCard(r, 80)
	if !hasLineWith(card, "Leaf 1", "Leaf 6") {
		t.Fatalf("expected two ingredient columns:\n%s", card)
	}

	r.Ingredients = r.Ingredients[:3]
	card = RecipeCard(r, 80)
	if hasLineWith(card, "Leaf 1", "Leaf 2") {
		t.Fatalf("short list should be one column:\n%s", card)
	}
	for _, want := range []string{"Big Salad", "Servings: 4 • Time: 15 min", "Toss"} {
		if !strings.Contains(card, want) {
			t.Fatalf("card missing %q:\n%s", want, card)
		}
	}
}

func hasLineWith(s string, parts ...string) bool {
	for _, line := range strings.Split(s, "\n") {
		ok := true
		for _, p := range parts {
			if !strings.Contains(line, p) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
