package recipes

import (
	"fmt"
	"strings"
)

// Formatter renders recipes as plain text for the CLI.
type Formatter struct {
	scale float64
}

func NewFormatter(scale float64) *Formatter {
	if scale <= 0 {
		scale = 1
	}
	return &Formatter{scale: scale}
}

func (f *Formatter) FormatRecipe(recipe *Recipe) string {
	var output strings.Builder

	output.WriteString(strings.ToUpper(recipe.Title) + "\n")
	output.WriteString(strings.Repeat("=", 50) + "\n")

	if recipe.FamilyMember != "" {
		output.WriteString(fmt.Sprintf("From %s's kitchen\n", recipe.FamilyMember))
	}
	if recipe.Description != "" {
		output.WriteString(recipe.Description + "\n")
	}
	output.WriteString(FormatDuration(recipe.PrepTime, recipe.CookTime))
	if label := DifficultyLabel(recipe.Difficulty); label != "" {
		output.WriteString(" | " + label)
	}
	if label := servingsLabel(recipe.Servings, f.scale); label != "" {
		output.WriteString(" | " + label)
	}
	output.WriteString("\n\n")

	if len(recipe.Ingredients) > 0 {
		output.WriteString("INGREDIENTS:\n")
		for _, ingredient := range recipe.Ingredients {
			output.WriteString("  • ")
			if amount := ScaleQuantity(ingredient.Quantity, f.scale); amount != "" {
				output.WriteString(amount + " ")
			}
			if ingredient.Unit != "" {
				output.WriteString(ingredient.Unit + " ")
			}
			output.WriteString(ingredient.Item)
			if ingredient.Note != "" {
				output.WriteString(" (" + ingredient.Note + ")")
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	if len(recipe.Instructions) > 0 {
		output.WriteString("INSTRUCTIONS:\n")
		for i, instruction := range recipe.Instructions {
			output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, instruction))
		}
	}

	if recipe.Tips != "" {
		output.WriteString("\nTIPS: " + recipe.Tips + "\n")
	}

	return output.String()
}

func (f *Formatter) FormatRecipeList(recipes []Recipe) string {
	var output strings.Builder

	output.WriteString("Recipes:\n")
	for i, recipe := range recipes {
		output.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, recipe.Title, recipe.Slug))
	}

	return output.String()
}
