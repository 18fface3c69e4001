package recipes

import (
	"log/slog"
	"net/http"

	"hearth/internal/seasons"
	"hearth/internal/templates"

	"github.com/samber/lo"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type listItem struct {
	Title        string
	Slug         string
	Description  string
	FamilyMember string
	Duration     string
	Difficulty   string
	Tags         []option
	ImageURL     string
}

type ingredientView struct {
	Amount string
	Unit   string
	Item   string
	Note   string
}

// renderList executes the list template over the filtered recipes.
func (s *server) renderList(w http.ResponseWriter, r *http.Request, all, matched []Recipe, f Filter) {
	items := lo.Map(matched, func(rec Recipe, _ int) listItem {
		imageURL, _ := s.images.URL(rec.Image, 600)
		return listItem{
			Title:        rec.Title,
			Slug:         rec.Slug,
			Description:  rec.Description,
			FamilyMember: rec.FamilyMember,
			Duration:     FormatDuration(rec.PrepTime, rec.CookTime),
			Difficulty:   DifficultyLabel(rec.Difficulty),
			Tags:         tagOptions(rec.Tags, f.Tag),
			ImageURL:     imageURL,
		}
	})

	data := struct {
		Style        seasons.Style
		Query        string
		Tags         []option
		Difficulties []option
		Recipes      []listItem
	}{
		Style:        seasons.GetCurrentStyle(),
		Query:        f.Query,
		Tags:         tagOptions(Tags(all), f.Tag),
		Difficulties: difficultyOptions(f.Difficulty),
		Recipes:      items,
	}

	if err := templates.List.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "list template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// renderRecipe executes the detail template with ingredient amounts scaled.
func (s *server) renderRecipe(w http.ResponseWriter, r *http.Request, recipe *Recipe, related []Recipe, scale float64, shared bool) {
	imageURL, _ := s.images.URL(recipe.Image, 1000)

	data := struct {
		Style         seasons.Style
		Title         string
		Slug          string
		Description   string
		FamilyMember  string
		Duration      string
		Difficulty    string
		ServingsLabel string
		Tips          string
		ImageURL      string
		ScaleOptions  []option
		Ingredients   []ingredientView
		Instructions  []string
		Related       []Recipe
		MailEnabled   bool
		Shared        bool
	}{
		Style:         seasons.GetCurrentStyle(),
		Title:         recipe.Title,
		Slug:          recipe.Slug,
		Description:   recipe.Description,
		FamilyMember:  recipe.FamilyMember,
		Duration:      FormatDuration(recipe.PrepTime, recipe.CookTime),
		Difficulty:    DifficultyLabel(recipe.Difficulty),
		ServingsLabel: servingsLabel(recipe.Servings, scale),
		Tips:          recipe.Tips,
		ImageURL:      imageURL,
		ScaleOptions:  scaleOptions(scale),
		Ingredients:   ingredientViews(recipe.Ingredients, scale),
		Instructions:  recipe.Instructions,
		Related:       related,
		MailEnabled:   s.mailer != nil,
		Shared:        shared,
	}

	if err := templates.Recipe.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "recipe template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func ingredientViews(ingredients []Ingredient, scale float64) []ingredientView {
	return lo.Map(ingredients, func(ing Ingredient, _ int) ingredientView {
		return ingredientView{
			Amount: ScaleQuantity(ing.Quantity, scale),
			Unit:   ing.Unit,
			Item:   ing.Item,
			Note:   ing.Note,
		}
	})
}

func servingsLabel(servings int, scale float64) string {
	if servings <= 0 {
		return ""
	}
	return "Serves " + FormatAmount(float64(servings)*scale)
}

func tagOptions(tags []string, selected string) []option {
	return lo.Map(tags, func(tag string, _ int) option {
		return option{Value: tag, Label: TagLabel(tag), Selected: tag == selected}
	})
}

func difficultyOptions(selected string) []option {
	codes := []string{"easy", "weeknight", "showstopper"}
	return lo.Map(codes, func(code string, _ int) option {
		return option{Value: code, Label: DifficultyLabel(code), Selected: code == selected}
	})
}

var scaleValues = []float64{0.5, 1, 2, 3}

func scaleOptions(selected float64) []option {
	return lo.Map(scaleValues, func(v float64, _ int) option {
		return option{
			Value:    FormatAmount(v),
			Label:    FormatAmount(v) + "x",
			Selected: v == selected,
		}
	})
}
