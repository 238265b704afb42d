package ai

import (
	"context"
	"strings"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
)

// MockGenerator serves recipes from a small fixed catalog. It honors meal
// type, excluded ingredients, allergens and the calorie range; everything
// else is advisory.
type MockGenerator struct {
	catalog []recipe.Recipe
}

var _ outbound.RecipeGenerator = (*MockGenerator)(nil)

// NewMockGenerator creates a generator over the built-in catalog.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{catalog: mockCatalog()}
}

// Generate filters the catalog against the request constraints. The result
// is never empty: when every recipe is filtered out, the unfiltered catalog
// is returned so callers always have something to show.
func (m *MockGenerator) Generate(ctx context.Context, req recipe.GenerateRequest) (*recipe.GenerateResponse, error) {
	matched := make([]recipe.Recipe, 0, len(m.catalog))
	for _, r := range m.catalog {
		if !m.matches(r, req) {
			continue
		}
		if req.Servings > 0 {
			r.Servings = req.Servings
		}
		matched = append(matched, r)
	}
	if len(matched) == 0 {
		matched = append(matched, m.catalog...)
	}

	return &recipe.GenerateResponse{
		Success: true,
		Data: recipe.GenerateResult{
			Recipes:      matched,
			GenerationID: uuid.New().String(),
			Source:       recipe.SourceMock,
		},
	}, nil
}

func (m *MockGenerator) matches(r recipe.Recipe, req recipe.GenerateRequest) bool {
	if req.MealType != "" && !hasTag(r.DietaryTags, req.MealType) {
		return false
	}
	if req.CookingTime > 0 && r.TotalTime() > req.CookingTime {
		return false
	}
	if req.CalorieRange != nil {
		cals := int(r.Nutrition.Calories)
		if cals < req.CalorieRange.Min || (req.CalorieRange.Max > 0 && cals > req.CalorieRange.Max) {
			return false
		}
	}
	for _, excluded := range req.ExcludeIngredients {
		if hasIngredient(r.Ingredients, excluded) {
			return false
		}
	}
	if req.UserPreferences != nil {
		for _, allergen := range req.UserPreferences.Allergens {
			if hasIngredient(r.Ingredients, allergen) {
				return false
			}
		}
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func hasIngredient(ingredients []recipe.Ingredient, name string) bool {
	for _, ing := range ingredients {
		if strings.Contains(strings.ToLower(ing.Name), strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func mockCatalog() []recipe.Recipe {
	return []recipe.Recipe{
		{
			ID:          "mock-overnight-oats",
			Title:       "Overnight Oats with Berries",
			Description: "Rolled oats soaked overnight with yogurt and mixed berries.",
			CuisineType: "american",
			PrepTime:    10,
			CookTime:    0,
			Servings:    2,
			Difficulty:  "easy",
			Ingredients: []recipe.Ingredient{
				{Name: "rolled oats", Amount: "1", Unit: "cup"},
				{Name: "greek yogurt", Amount: "1/2", Unit: "cup"},
				{Name: "mixed berries", Amount: "1", Unit: "cup"},
				{Name: "honey", Amount: "1", Unit: "tbsp"},
			},
			Instructions: []string{
				"Combine oats and yogurt in a jar.",
				"Refrigerate overnight.",
				"Top with berries and honey before serving.",
			},
			Nutrition:    recipe.Nutrition{Calories: 320, Protein: 14, Carbs: 52, Fat: 7, Fiber: 6},
			DietaryTags:  []string{"breakfast", "vegetarian"},
			CostEstimate: 3.5,
		},
		{
			ID:          "mock-chickpea-salad",
			Title:       "Mediterranean Chickpea Salad",
			Description: "Chickpeas, cucumber, tomato and feta with a lemon dressing.",
			CuisineType: "mediterranean",
			PrepTime:    15,
			CookTime:    0,
			Servings:    2,
			Difficulty:  "easy",
			Ingredients: []recipe.Ingredient{
				{Name: "chickpeas", Amount: "1", Unit: "can"},
				{Name: "cucumber", Amount: "1", Unit: "whole"},
				{Name: "cherry tomatoes", Amount: "1", Unit: "cup"},
				{Name: "feta cheese", Amount: "1/2", Unit: "cup"},
				{Name: "lemon", Amount: "1", Unit: "whole"},
			},
			Instructions: []string{
				"Drain and rinse the chickpeas.",
				"Chop the cucumber and halve the tomatoes.",
				"Toss everything with lemon juice and olive oil.",
			},
			Nutrition:    recipe.Nutrition{Calories: 410, Protein: 18, Carbs: 48, Fat: 16, Fiber: 11},
			DietaryTags:  []string{"lunch", "vegetarian"},
			CostEstimate: 5.0,
		},
		{
			ID:          "mock-salmon-bowl",
			Title:       "Teriyaki Salmon Rice Bowl",
			Description: "Pan-seared salmon over rice with steamed broccoli.",
			CuisineType: "japanese",
			PrepTime:    10,
			CookTime:    20,
			Servings:    2,
			Difficulty:  "medium",
			Ingredients: []recipe.Ingredient{
				{Name: "salmon fillet", Amount: "2", Unit: "pieces"},
				{Name: "rice", Amount: "1", Unit: "cup"},
				{Name: "broccoli", Amount: "2", Unit: "cups"},
				{Name: "teriyaki sauce", Amount: "3", Unit: "tbsp"},
			},
			Instructions: []string{
				"Cook the rice.",
				"Sear the salmon and glaze with teriyaki sauce.",
				"Steam the broccoli and assemble the bowls.",
			},
			Nutrition:    recipe.Nutrition{Calories: 560, Protein: 38, Carbs: 58, Fat: 18, Fiber: 5},
			DietaryTags:  []string{"dinner", "pescatarian"},
			CostEstimate: 9.5,
		},
		{
			ID:          "mock-lentil-curry",
			Title:       "Red Lentil Coconut Curry",
			Description: "Red lentils simmered in spiced coconut milk.",
			CuisineType: "indian",
			PrepTime:    10,
			CookTime:    25,
			Servings:    4,
			Difficulty:  "easy",
			Ingredients: []recipe.Ingredient{
				{Name: "red lentils", Amount: "1.5", Unit: "cups"},
				{Name: "coconut milk", Amount: "1", Unit: "can"},
				{Name: "onion", Amount: "1", Unit: "whole"},
				{Name: "curry powder", Amount: "2", Unit: "tbsp"},
			},
			Instructions: []string{
				"Saute the onion with the curry powder.",
				"Add lentils and coconut milk, simmer until tender.",
				"Season and serve over rice.",
			},
			Nutrition:    recipe.Nutrition{Calories: 430, Protein: 19, Carbs: 50, Fat: 17, Fiber: 12},
			DietaryTags:  []string{"dinner", "vegan", "vegetarian"},
			CostEstimate: 4.0,
		},
		{
			ID:          "mock-apple-peanut-snack",
			Title:       "Apple Slices with Peanut Butter",
			Description: "Crisp apple slices with a side of peanut butter.",
			CuisineType: "american",
			PrepTime:    5,
			CookTime:    0,
			Servings:    1,
			Difficulty:  "easy",
			Ingredients: []recipe.Ingredient{
				{Name: "apple", Amount: "1", Unit: "whole"},
				{Name: "peanut butter", Amount: "2", Unit: "tbsp"},
			},
			Instructions: []string{
				"Slice the apple.",
				"Serve with peanut butter for dipping.",
			},
			Nutrition:    recipe.Nutrition{Calories: 270, Protein: 8, Carbs: 29, Fat: 16, Fiber: 6},
			DietaryTags:  []string{"snack", "vegetarian", "vegan"},
			CostEstimate: 1.5,
		},
	}
}
