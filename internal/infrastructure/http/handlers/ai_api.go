package handlers

import (
	"net/http"

	"github.com/platewise/v1/internal/domain/recipe"
	"go.uber.org/zap"
)

// GenerateRecipes handles POST /api/v1/recipes/generate
//
// Preferences on file are merged into the request unless the caller already
// supplied their own constraint block.
func (h *APIHandlers) GenerateRecipes(w http.ResponseWriter, r *http.Request) {
	var req recipe.GenerateRequest
	if !h.decode(w, r, &req) {
		return
	}

	if req.UserPreferences == nil {
		prefs := h.preferences.State()
		req.UserPreferences = &recipe.RequestPreferences{
			DietaryRestrictions: prefs.DietaryPreferences,
			Allergens:           prefs.Allergies,
		}
	}
	if req.Servings == 0 {
		req.Servings = h.preferences.State().ServingSize
	}

	resp, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		h.logger.Error("Recipe generation failed", zap.Error(err))
		h.writeError(w, http.StatusServiceUnavailable, "Recipe generation is temporarily unavailable")
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    resp.Data,
	})
}
