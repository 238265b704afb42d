package handlers

import (
	"net/http"
	"time"

	"github.com/platewise/v1/internal/application/history"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/go-chi/chi/v5"
)

// SaveRecipeRequest records a recipe in history, either as a favorite or a
// recently viewed entry depending on the route.
type SaveRecipeRequest struct {
	Recipe recipe.Recipe `json:"recipe" validate:"required"`
}

// GetHistory handles GET /api/v1/history
func (h *APIHandlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.history.State(),
	})
}

// AddFavorite handles POST /api/v1/history/favorites
func (h *APIHandlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req SaveRecipeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Recipe.ID == "" {
		h.writeError(w, http.StatusBadRequest, "Recipe id is required")
		return
	}

	h.history.AddFavorite(r.Context(), history.EntryFromRecipe(req.Recipe, time.Now()))
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.history.Favorites(),
		Message: "Recipe saved to favorites",
	})
}

// RemoveFavorite handles DELETE /api/v1/history/favorites/{id}
func (h *APIHandlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.history.RemoveFavorite(r.Context(), id)
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.history.Favorites(),
		Message: "Recipe removed from favorites",
	})
}

// CheckFavorite handles GET /api/v1/history/favorites/{id}
func (h *APIHandlers) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]bool{"favorite": h.history.IsFavorite(id)},
	})
}

// RecordView handles POST /api/v1/history/views
func (h *APIHandlers) RecordView(w http.ResponseWriter, r *http.Request) {
	var req SaveRecipeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Recipe.ID == "" {
		h.writeError(w, http.StatusBadRequest, "Recipe id is required")
		return
	}

	h.history.RecordView(r.Context(), history.EntryFromRecipe(req.Recipe, time.Now()))
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.history.RecentlyViewed(),
	})
}
