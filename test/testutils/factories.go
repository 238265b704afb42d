// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/platewise/v1/internal/application/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// RecipeFactory builds generator-shaped recipes with plausible data.
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a recipe factory with a seeded faker so tests
// stay reproducible.
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Recipe returns a fully populated recipe.
func (f *RecipeFactory) Recipe() recipe.Recipe {
	return recipe.Recipe{
		ID:          uuid.New().String(),
		Title:       f.faker.Dinner(),
		Description: f.faker.Sentence(8),
		CuisineType: f.faker.RandomString([]string{"italian", "mexican", "japanese", "indian"}),
		PrepTime:    f.faker.Number(5, 30),
		CookTime:    f.faker.Number(10, 60),
		Servings:    f.faker.Number(1, 6),
		Difficulty:  f.faker.RandomString([]string{"easy", "medium", "hard"}),
		Ingredients: []recipe.Ingredient{
			{Name: f.faker.Vegetable(), Amount: "2", Unit: "cups"},
			{Name: f.faker.Fruit(), Amount: "1", Unit: "piece"},
		},
		Instructions: []string{f.faker.Sentence(6), f.faker.Sentence(6)},
		Nutrition: recipe.Nutrition{
			Calories: float64(f.faker.Number(150, 700)),
			Protein:  float64(f.faker.Number(5, 45)),
			Carbs:    float64(f.faker.Number(10, 90)),
			Fat:      float64(f.faker.Number(3, 35)),
			Fiber:    float64(f.faker.Number(1, 12)),
		},
		DietaryTags:  []string{"dinner"},
		CostEstimate: f.faker.Float64Range(2, 25),
		ImageURL:     f.faker.ImageURL(640, 480),
	}
}

// RecipeWithNutrition returns a recipe with exact per-serving macros, for
// tests that assert on aggregate arithmetic.
func (f *RecipeFactory) RecipeWithNutrition(calories, protein, carbs, fat float64) recipe.Recipe {
	r := f.Recipe()
	r.Nutrition = recipe.Nutrition{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	return r
}

// Slot returns a meal plan slot with exact macros for one serving.
func Slot(name string, calories, protein, carbs, fat float64) mealplan.Slot {
	id := uuid.New().String()
	return mealplan.Slot{
		ID:         id,
		RecipeID:   id,
		RecipeName: name,
		Calories:   calories,
		Protein:    protein,
		Carbs:      carbs,
		Fat:        fat,
		Servings:   1,
	}
}
