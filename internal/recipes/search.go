package recipes

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Filter narrows the recipe list. Zero value matches everything.
type Filter struct {
	Query      string
	Tag        string
	Difficulty string
}

func (f Filter) Empty() bool {
	return f.Query == "" && f.Tag == "" && f.Difficulty == ""
}

// Search returns the recipes matching f, preserving input order.
func Search(all []Recipe, f Filter) []Recipe {
	if f.Empty() {
		return all
	}
	return lo.Filter(all, func(r Recipe, _ int) bool {
		return matches(r, f)
	})
}

func matches(r Recipe, f Filter) bool {
	if f.Difficulty != "" && !strings.EqualFold(r.Difficulty, f.Difficulty) {
		return false
	}
	if f.Tag != "" {
		if !lo.ContainsBy(r.Tags, func(tag string) bool {
			return strings.EqualFold(tag, f.Tag)
		}) {
			return false
		}
	}
	if f.Query != "" {
		needle := strings.ToLower(strings.TrimSpace(f.Query))
		haystack := strings.ToLower(strings.Join(append([]string{
			r.Title, r.Description, r.FamilyMember,
		}, r.Tags...), "\n"))
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// Tags returns the distinct tags across all recipes, sorted.
func Tags(all []Recipe) []string {
	tags := lo.Uniq(lo.FlatMap(all, func(r Recipe, _ int) []string {
		return r.Tags
	}))
	sort.Strings(tags)
	return tags
}

// Related picks up to limit recipes sharing a tag with r, closest-first by
// number of shared tags.
func Related(all []Recipe, r *Recipe, limit int) []Recipe {
	type scored struct {
		recipe Recipe
		shared int
	}
	candidates := lo.FilterMap(all, func(other Recipe, _ int) (scored, bool) {
		if other.Slug == r.Slug {
			return scored{}, false
		}
		shared := len(lo.Intersect(other.Tags, r.Tags))
		if shared == 0 {
			return scored{}, false
		}
		return scored{recipe: other, shared: shared}, true
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].shared > candidates[j].shared
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return lo.Map(candidates, func(s scored, _ int) Recipe {
		return s.recipe
	})
}
