package recipes

// Recipe mirrors the recipe document type in the content store. Fields are
// read-only snapshots; display strings are derived, never written back.
type Recipe struct {
	ID           string       `json:"_id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description,omitempty"`
	FamilyMember string       `json:"familyMember,omitempty"`
	Servings     int          `json:"servings,omitempty"`
	PrepTime     int          `json:"prepTime,omitempty"` // minutes
	CookTime     int          `json:"cookTime,omitempty"` // minutes
	Difficulty   string       `json:"difficulty,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Tips         string       `json:"tips,omitempty"`
	Image        string       `json:"image,omitempty"` // opaque asset ref
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Instructions []string     `json:"instructions,omitempty"`
}

type Ingredient struct {
	Key      string `json:"_key"`
	Item     string `json:"item"`
	Quantity string `json:"quantity,omitempty"` // free-form: "1", "1/2", "1 1/2"
	Unit     string `json:"unit,omitempty"`
	Note     string `json:"note,omitempty"`
}
