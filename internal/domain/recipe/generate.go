package recipe

// CalorieRange bounds the per-serving calories of generated recipes.
type CalorieRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RequestPreferences carries the user constraints forwarded to the generator.
type RequestPreferences struct {
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	Allergens           []string `json:"allergens,omitempty"`
	SkillLevel          string   `json:"skill_level,omitempty"`
	Equipment           []string `json:"equipment,omitempty"`
}

// GenerateRequest describes a recipe generation request. All fields are
// optional; an empty request asks for unconstrained suggestions.
type GenerateRequest struct {
	MealType            string              `json:"meal_type,omitempty"`
	CuisinePreference   string              `json:"cuisine_preference,omitempty"`
	CookingTime         int                 `json:"cooking_time,omitempty"`
	SpecificIngredients []string            `json:"specific_ingredients,omitempty"`
	ExcludeIngredients  []string            `json:"exclude_ingredients,omitempty"`
	CalorieRange        *CalorieRange       `json:"calorie_range,omitempty"`
	Servings            int                 `json:"servings,omitempty"`
	UserPreferences     *RequestPreferences `json:"user_preferences,omitempty"`
}

// GenerationSource identifies which path produced a generation response.
type GenerationSource string

const (
	SourceAI       GenerationSource = "ai"
	SourceMock     GenerationSource = "mock"
	SourceFallback GenerationSource = "fallback"
)

// GenerateResult is the payload of a successful generation response.
type GenerateResult struct {
	Recipes      []Recipe         `json:"recipes"`
	GenerationID string           `json:"generation_id"`
	Source       GenerationSource `json:"source"`
}

// GenerateResponse is the generation collaborator's response envelope.
type GenerateResponse struct {
	Success bool           `json:"success"`
	Data    GenerateResult `json:"data"`
}
