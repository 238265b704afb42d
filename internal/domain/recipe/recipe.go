// Package recipe defines the recipe shape exchanged with the generation
// collaborator. Stores copy the identity and nutrition fields they need by
// value; they never hold live references to a recipe, so later edits to a
// recipe elsewhere do not cascade into planned meals or favorites.
package recipe

// Ingredient is a single recipe ingredient as returned by the generator.
// Amount is free text so quantities like "a pinch" survive round trips.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Nutrition carries per-serving macro information for a generated recipe.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Recipe is the generation collaborator's recipe payload.
type Recipe struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	CuisineType     string       `json:"cuisine_type"`
	PrepTime        int          `json:"prep_time"`
	CookTime        int          `json:"cook_time"`
	Servings        int          `json:"servings"`
	Difficulty      string       `json:"difficulty"`
	Ingredients     []Ingredient `json:"ingredients"`
	Instructions    []string     `json:"instructions"`
	Nutrition       Nutrition    `json:"nutrition"`
	DietaryTags     []string     `json:"dietary_tags"`
	CostEstimate    float64      `json:"cost_estimate"`
	MatchPercentage int          `json:"match_percentage"`
	ImageURL        string       `json:"image_url"`
}

// TotalTime returns the combined preparation and cooking time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
