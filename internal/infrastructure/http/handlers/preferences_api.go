package handlers

import (
	"errors"
	"net/http"

	"github.com/platewise/v1/internal/application/preferences"
)

// UpdatePreferencesRequest carries a partial preferences update. Absent
// fields are left untouched; present list fields replace wholesale.
type UpdatePreferencesRequest struct {
	DietaryPreferences *[]string `json:"dietaryPreferences"`
	Allergies          *[]string `json:"allergies"`
	HealthGoals        *[]string `json:"healthGoals"`
	DailyCalorieTarget *int      `json:"dailyCalorieTarget" validate:"omitempty,min=1"`
	ServingSize        *int      `json:"servingSize" validate:"omitempty,min=1"`
	MeasurementUnit    *string   `json:"measurementUnit" validate:"omitempty,oneof=metric imperial"`
}

// GetPreferences handles GET /api/v1/preferences
func (h *APIHandlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.preferences.State(),
	})
}

// UpdatePreferences handles PUT /api/v1/preferences
func (h *APIHandlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if !h.decode(w, r, &req) {
		return
	}

	ctx := r.Context()
	if req.DietaryPreferences != nil {
		h.preferences.SetDietaryPreferences(ctx, *req.DietaryPreferences)
	}
	if req.Allergies != nil {
		h.preferences.SetAllergies(ctx, *req.Allergies)
	}
	if req.HealthGoals != nil {
		h.preferences.SetHealthGoals(ctx, *req.HealthGoals)
	}
	if req.DailyCalorieTarget != nil {
		h.preferences.SetDailyCalorieTarget(ctx, *req.DailyCalorieTarget)
	}
	if req.ServingSize != nil {
		h.preferences.SetServingSize(ctx, *req.ServingSize)
	}
	if req.MeasurementUnit != nil {
		unit := preferences.MeasurementUnit(*req.MeasurementUnit)
		if err := h.preferences.SetMeasurementUnit(ctx, unit); err != nil {
			if errors.Is(err, preferences.ErrInvalidUnit) {
				h.writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			h.writeError(w, http.StatusInternalServerError, "Failed to update preferences")
			return
		}
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.preferences.State(),
		Message: "Preferences updated",
	})
}

// ResetPreferences handles DELETE /api/v1/preferences
func (h *APIHandlers) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	h.preferences.Reset(r.Context())
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.preferences.State(),
		Message: "Preferences reset to defaults",
	})
}
