package handlers

import (
	"net/http"

	"github.com/platewise/v1/internal/application/shopping"
	"github.com/go-chi/chi/v5"
)

// AddShoppingItemRequest adds one line item to the shopping list.
type AddShoppingItemRequest struct {
	Name       string `json:"name" validate:"required"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
	Category   string `json:"category"`
	RecipeID   string `json:"recipeId"`
	RecipeName string `json:"recipeName"`
}

// GetShoppingList handles GET /api/v1/shopping-list
func (h *APIHandlers) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.shopping.Items(),
	})
}

// AddShoppingItem handles POST /api/v1/shopping-list/items
func (h *APIHandlers) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req AddShoppingItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item := h.shopping.AddItem(r.Context(), shopping.NewItem{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		RecipeID:   req.RecipeID,
		RecipeName: req.RecipeName,
	})
	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    item,
		Message: "Item added",
	})
}

// ToggleShoppingItem handles PUT /api/v1/shopping-list/items/{id}/toggle
func (h *APIHandlers) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.shopping.ToggleItem(r.Context(), id)
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.shopping.Items(),
	})
}

// RemoveShoppingItem handles DELETE /api/v1/shopping-list/items/{id}
func (h *APIHandlers) RemoveShoppingItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.shopping.RemoveItem(r.Context(), id)
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.shopping.Items(),
		Message: "Item removed",
	})
}

// ClearCheckedItems handles DELETE /api/v1/shopping-list/checked
func (h *APIHandlers) ClearCheckedItems(w http.ResponseWriter, r *http.Request) {
	h.shopping.ClearChecked(r.Context())
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.shopping.Items(),
		Message: "Checked items cleared",
	})
}

// ClearShoppingList handles DELETE /api/v1/shopping-list
func (h *APIHandlers) ClearShoppingList(w http.ResponseWriter, r *http.Request) {
	h.shopping.ClearAll(r.Context())
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Shopping list cleared",
	})
}
