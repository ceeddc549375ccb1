package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

// Ingredient lists longer than this are split into two columns.
const twoColumnThreshold = 8

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true).
			MarginTop(1)
)

// RecipeCard lays out a recipe for the scrollback, at most width columns
// wide.
func RecipeCard(r domain.Recipe, width int) string {
	if width <= 0 || width > 100 {
		width = 100
	}
	// Border and padding take four columns.
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	body := lipgloss.NewStyle().Width(inner)
	parts := []string{
		cardTitleStyle.Width(inner).Render(r.Title),
		secondaryStyle.Render(fmt.Sprintf("Servings: %d • Time: %d min", r.Servings, r.TimeMinutes)),
		primaryStyle.Inherit(body).Render(r.Description),
		sectionStyle.Render("Ingredients"),
		ingredientBlock(r.Ingredients, inner),
		sectionStyle.Render("Steps"),
		stepBlock(r.Steps, inner),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func ingredientBlock(items []string, width int) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it
	}
	if len(lines) <= twoColumnThreshold {
		return primaryStyle.Width(width).Render(strings.Join(lines, "\n"))
	}

	half := (len(lines) + 1) / 2
	col := lipgloss.NewStyle().Width(width / 2).Inherit(primaryStyle)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(strings.Join(lines[:half], "\n")),
		col.Render(strings.Join(lines[half:], "\n")),
	)
}

func stepBlock(steps []string, width int) string {
	numbered := make([]string, len(steps))
	for i, s := range steps {
		numbered[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			secondaryStyle.Render(fmt.Sprintf("%2d. ", i+1)),
			primaryStyle.Width(width-4).Render(s),
		)
	}
	return strings.Join(numbered, "\n")
}

// PrintRecipe prints the recipe card into the scrollback.
func (u *UI) PrintRecipe(r domain.Recipe) {
	u.Println(RecipeCard(r, u.Width()))
}
