// Package handlers provides HTTP handlers for the REST API. Handlers are a
// thin projection of the store layer: they decode and validate requests,
// call a store mutator or derived-value function, and wrap the result in the
// standard response envelope.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/platewise/v1/internal/application/history"
	"github.com/platewise/v1/internal/application/mealplan"
	"github.com/platewise/v1/internal/application/nutritionlog"
	"github.com/platewise/v1/internal/application/preferences"
	"github.com/platewise/v1/internal/application/profile"
	"github.com/platewise/v1/internal/application/shopping"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	preferences  *preferences.Service
	mealPlan     *mealplan.Service
	history      *history.Service
	shopping     *shopping.Service
	nutritionLog *nutritionlog.Service
	profiles     *profile.Service
	generator    outbound.RecipeGenerator
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	prefs *preferences.Service,
	mealPlan *mealplan.Service,
	hist *history.Service,
	shoppingList *shopping.Service,
	nutritionLog *nutritionlog.Service,
	profiles *profile.Service,
	generator outbound.RecipeGenerator,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		preferences:  prefs,
		mealPlan:     mealPlan,
		history:      hist,
		shopping:     shoppingList,
		nutritionLog: nutritionLog,
		profiles:     profiles,
		generator:    generator,
		validate:     validator.New(),
		logger:       logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError writes a JSON error response
func (h *APIHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// decode unmarshals and validates a JSON request body. It reports failures
// to the client itself; callers just bail out on false.
func (h *APIHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
