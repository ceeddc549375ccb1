package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

func TestCoerceList(t *testing.T) {
	assert.Empty(t, CoerceList(domain.Absent()))
	assert.Empty(t, CoerceList(domain.Null()))

	seq := domain.Strings("a", "b")
	assert.Equal(t, seq.Items, CoerceList(seq))

	assert.Equal(t,
		[]domain.Value{domain.String("a"), domain.String("b"), domain.String("c")},
		CoerceList(domain.String("a\nb\n\n c ")))

	assert.Equal(t,
		[]domain.Value{domain.String("salt"), domain.String("pepper")},
		CoerceList(domain.String("salt, pepper")))

	assert.Equal(t, []domain.Value{domain.Number("3")}, CoerceList(domain.Number("3")))

	m := domain.Mapping(domain.Field{Key: "name", Value: domain.String("flour")})
	assert.Equal(t, []domain.Value{m}, CoerceList(m))
}

func TestPlainIngredient(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Value
		want string
	}{
		{"text", domain.String("- salt"), "salt"},
		{"number", domain.Number("2"), "2"},
		{"null", domain.Null(), ""},
		{"sequence", domain.Strings("a", "b"), "a, b"},
		{
			"name and quantity",
			domain.Mapping(
				domain.Field{Key: "name", Value: domain.String("flour")},
				domain.Field{Key: "quantity", Value: domain.String("2 cups")},
			),
			"2 cups flour",
		},
		{
			"item and numeric amount",
			domain.Mapping(
				domain.Field{Key: "amount", Value: domain.Number("2")},
				domain.Field{Key: "item", Value: domain.String("eggs")},
			),
			"2 eggs",
		},
		{
			"name only",
			domain.Mapping(domain.Field{Key: "Ingredient", Value: domain.String("basil")}),
			"basil",
		},
		{
			"unknown keys skip step text",
			domain.Mapping(
				domain.Field{Key: "foo", Value: domain.String("bar")},
				domain.Field{Key: "step", Value: domain.String("mix")},
				domain.Field{Key: "baz", Value: domain.String("qux")},
			),
			"bar, qux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainIngredient(tt.in))
		})
	}
}

func TestPlainStep(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Value
		want string
	}{
		{"numbered text", domain.String("1. Boil"), "Boil"},
		{
			"instruction key",
			domain.Mapping(
				domain.Field{Key: "step_number", Value: domain.Number("1")},
				domain.Field{Key: "instruction", Value: domain.String("Mix well")},
			),
			"Mix well",
		},
		{
			"unknown keys",
			domain.Mapping(
				domain.Field{Key: "a", Value: domain.String("Mix")},
				domain.Field{Key: "b", Value: domain.String("Bake")},
			),
			"Mix. Bake",
		},
		{"absent", domain.Absent(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainStep(tt.in))
		})
	}
}
