package recipe

import "github.com/hammamikhairi/recipestudio/internal/domain"

// fieldKeys lists the accepted keys per draft field, canonical key first.
var (
	titleKeys       = []string{"title", "name", "recipe_name"}
	descriptionKeys = []string{"description", "summary"}
	servingsKeys    = []string{"servings", "serves", "yield"}
	timeKeys        = []string{"time_minutes", "total_time_minutes", "time", "total_time", "cook_time"}
	ingredientsKeys = []string{"ingredients", "ingredient_list"}
	stepsKeys       = []string{"steps", "instructions", "directions", "method"}
)

// DraftFromValue maps a decoded JSON object onto a Draft. A lone "recipe"
// wrapper object is unwrapped first. The boolean is false when the object
// carries no recipe field at all.
func DraftFromValue(v domain.Value) (domain.Draft, bool) {
	if v.Kind != domain.KindMapping {
		return domain.Draft{}, false
	}
	if inner, ok := v.Get("recipe"); ok && inner.Kind == domain.KindMapping && len(v.Fields) == 1 {
		v = inner
	}

	d := domain.Draft{
		Title:       pick(v, titleKeys),
		Description: pick(v, descriptionKeys),
		Servings:    pick(v, servingsKeys),
		TimeMinutes: pick(v, timeKeys),
		Ingredients: pick(v, ingredientsKeys),
		Steps:       pick(v, stepsKeys),
	}
	return d, !d.IsEmpty()
}

// pick returns the value of the first key present.
func pick(v domain.Value, keys []string) domain.Value {
	for _, k := range keys {
		if fv, ok := v.Get(k); ok {
			return fv
		}
	}
	return domain.Absent()
}
