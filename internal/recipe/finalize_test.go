package recipe

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// countingRegistry records every title it is asked to make unique.
type countingRegistry struct {
	seen []string
}

func (r *countingRegistry) Unique(title string) string {
	r.seen = append(r.seen, title)
	return title + " (v2)"
}

// shapes covers every form a model has been seen to use for a field.
func shapes() []domain.Value {
	return []domain.Value{
		domain.Absent(),
		domain.Null(),
		domain.String(""),
		domain.String("   "),
		domain.String("{}"),
		domain.String("Title: Soup"),
		domain.String("a, b\nc"),
		domain.Number("0"),
		domain.Number("-4"),
		domain.Number("3.7"),
		domain.Number("1e40"),
		domain.Bool(true),
		domain.Sequence(),
		domain.Strings("", " ", "[]"),
		domain.Strings("- salt", "2. pepper"),
		domain.Sequence(domain.Null(), domain.Number("1")),
		domain.Mapping(),
		domain.Mapping(domain.Field{Key: "flour", Value: domain.String("2 cups")}),
		domain.Mapping(domain.Field{Key: "name", Value: domain.String("egg")}),
		domain.Sequence(domain.Mapping(domain.Field{Key: "instruction", Value: domain.String("Stir")})),
		domain.Sequence(domain.Sequence(domain.String("nested"))),
	}
}

func TestFinalizeAlwaysDisplayable(t *testing.T) {
	for i, title := range shapes() {
		for j, list := range shapes() {
			d := domain.Draft{
				Title:       title,
				Description: list,
				Servings:    title,
				TimeMinutes: list,
				Ingredients: list,
				Steps:       title,
			}
			r := Finalize(d, "tomato soup", nil)

			if r.Title == "" || r.Description == "" {
				t.Fatalf("[%d,%d] empty text fields: %+v", i, j, r)
			}
			if r.Servings < 1 || r.TimeMinutes < 1 {
				t.Fatalf("[%d,%d] non-positive numbers: %+v", i, j, r)
			}
			if len(r.Ingredients) == 0 || len(r.Steps) == 0 {
				t.Fatalf("[%d,%d] empty lists: %+v", i, j, r)
			}
			for _, s := range append(append([]string{r.Title, r.Description}, r.Ingredients...), r.Steps...) {
				if s == "" || strings.ContainsAny(s, "{}[]`\"") {
					t.Fatalf("[%d,%d] undisplayable entry %q in %+v", i, j, s, r)
				}
			}
		}
	}
}

func TestFinalizeTransportFailureFallback(t *testing.T) {
	r := Finalize(FromProse("", "spicy noodles"), "spicy noodles", nil)

	want := domain.Recipe{
		Title:       "Spicy Noodles",
		Description: "Spicy noodles turned into a balanced, easy-to-cook recipe.",
		Servings:    2,
		TimeMinutes: 20,
		Ingredients: domain.DefaultIngredients(),
		Steps:       domain.DefaultSteps(),
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("recipe (-want +got):\n%s", diff)
	}
}

func TestFinalizePlaceholders(t *testing.T) {
	d := domain.Draft{
		Title:       domain.String("Untitled Recipe."),
		Description: domain.String("A delicious dish created by AI."),
	}
	r := Finalize(d, "lemon tart", nil)
	assert.Equal(t, "Lemon Tart", r.Title)
	assert.Equal(t, "Lemon tart turned into a balanced, easy-to-cook recipe.", r.Description)

	r = Finalize(domain.Draft{}, "", nil)
	assert.Equal(t, domain.DefaultTitle, r.Title)
	assert.Equal(t, domain.DefaultDescription, r.Description)
}

func TestFinalizeNumbers(t *testing.T) {
	tests := []struct {
		in   domain.Value
		want int
	}{
		{domain.Number("4"), 4},
		{domain.Number("2.9"), 2},
		{domain.Number("0"), domain.DefaultServings},
		{domain.Number("1e12"), domain.DefaultServings},
		{domain.String("6 people"), 6},
		{domain.String(" 3 "), 3},
		{domain.String("-3"), domain.DefaultServings},
		{domain.String("several"), domain.DefaultServings},
		{domain.Bool(true), domain.DefaultServings},
		{domain.Strings("4"), domain.DefaultServings},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, asInt(tt.in, domain.DefaultServings), "asInt(%+v)", tt.in)
	}
}

func TestFinalizeKeyedLists(t *testing.T) {
	d := domain.Draft{
		Ingredients: domain.Mapping(
			domain.Field{Key: "flour", Value: domain.String("2 cups")},
			domain.Field{Key: "salt", Value: domain.String("1 tsp")},
		),
		Steps: domain.Mapping(
			domain.Field{Key: "1", Value: domain.String("Mix")},
			domain.Field{Key: "2", Value: domain.String("Bake")},
		),
	}
	r := Finalize(d, "bread", nil)
	assert.Equal(t, []string{"2 cups flour", "1 tsp salt"}, r.Ingredients)
	assert.Equal(t, []string{"Mix", "Bake"}, r.Steps)

	// A single structured ingredient is one entry, not one per key.
	d = domain.Draft{
		Ingredients: domain.Mapping(
			domain.Field{Key: "name", Value: domain.String("flour")},
			domain.Field{Key: "qty", Value: domain.String("1 cup")},
		),
	}
	r = Finalize(d, "bread", nil)
	assert.Equal(t, []string{"1 cup flour"}, r.Ingredients)
}

func TestFinalizeRegistersTitleOnce(t *testing.T) {
	reg := &countingRegistry{}
	r := Finalize(domain.Draft{Title: domain.String(`"Soup"`)}, "soup", reg)

	assert.Equal(t, []string{"Soup"}, reg.seen)
	assert.Equal(t, "Soup (v2)", r.Title)
}
