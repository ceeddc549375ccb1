package recipe

import (
	"testing"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

func titleOf(t *testing.T, v domain.Value) string {
	t.Helper()
	title, ok := v.Get("title")
	if !ok {
		t.Fatalf("no title in %+v", v)
	}
	return title.Text
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTitle string
	}{
		{
			"json fence with chatter",
			"Here you go:\n```json\n{\"title\":\"Soup\",\"servings\":2,\"ingredients\":[\"Water\",\"Salt\"],\"steps\":[\"Boil\",\"Season\"]}\n```\nEnjoy!",
			"Soup",
		},
		{"bare fence", "```\n{\"title\": \"Stew\"}\n```", "Stew"},
		{"inline object", `Sure! {"title": "Pie"} hope it helps`, "Pie"},
		{"nested braces", `x {"title": "Tart", "meta": {"a": {"b": 1}}} y`, "Tart"},
		{"first of two objects", `{"title":"A"} and {"title":"B"}`, "A"},
		{"whole text", `  {"title": "Plain"}  `, "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Extract(tt.in)
			if !ok {
				t.Fatalf("Extract(%q) found nothing", tt.in)
			}
			if got := titleOf(t, v); got != tt.wantTitle {
				t.Fatalf("title = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestExtractNothing(t *testing.T) {
	for _, in := range []string{"", "   ", "no json here", "[1, 2, 3]", "{broken", "} backwards {"} {
		if v, ok := Extract(in); ok {
			t.Fatalf("Extract(%q) = %+v, want nothing", in, v)
		}
	}
}

func TestExtractKeepsFullShape(t *testing.T) {
	v, ok := Extract("```json\n{\"title\":\"Soup\",\"servings\":2,\"ingredients\":[\"Water\",\"Salt\"],\"steps\":[\"Boil\",\"Season\"]}\n```")
	if !ok {
		t.Fatal("expected an object")
	}
	d, ok := DraftFromValue(v)
	if !ok {
		t.Fatal("expected a usable draft")
	}
	if d.Servings.Text != "2" || len(d.Ingredients.Items) != 2 || len(d.Steps.Items) != 2 {
		t.Fatalf("unexpected draft: %+v", d)
	}
}
