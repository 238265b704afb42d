package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/platewise/v1/internal/application/nutritionlog"
	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/go-chi/chi/v5"
)

// LogEntryRequest appends one food entry to the nutrition log.
type LogEntryRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	MealType string  `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	Name     string  `json:"name" validate:"required"`
	Calories float64 `json:"calories" validate:"min=0"`
	Protein  float64 `json:"protein" validate:"min=0"`
	Carbs    float64 `json:"carbs" validate:"min=0"`
	Fat      float64 `json:"fat" validate:"min=0"`
}

// LogEntry handles POST /api/v1/nutrition/entries
func (h *APIHandlers) LogEntry(w http.ResponseWriter, r *http.Request) {
	var req LogEntryRequest
	if !h.decode(w, r, &req) {
		return
	}

	entry, err := h.nutritionLog.AddEntry(r.Context(), nutritionlog.NewEntry{
		Date:     req.Date,
		MealType: nutrition.MealType(req.MealType),
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		switch {
		case errors.Is(err, nutritionlog.ErrInvalidDate), errors.Is(err, nutritionlog.ErrInvalidMealType):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, "Failed to log entry")
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    entry,
		Message: "Entry logged",
	})
}

// RemoveLogEntry handles DELETE /api/v1/nutrition/entries/{id}
func (h *APIHandlers) RemoveLogEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.nutritionLog.RemoveEntry(r.Context(), id)
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Entry removed"})
}

// GetDayLog handles GET /api/v1/nutrition/days/{date}
func (h *APIHandlers) GetDayLog(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !nutrition.ValidDate(date) {
		h.writeError(w, http.StatusBadRequest, nutritionlog.ErrInvalidDate.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"entries": h.nutritionLog.EntriesForDate(date),
			"totals":  h.nutritionLog.DailyTotals(date),
		},
	})
}

// GetWeeklyNutrition handles GET /api/v1/nutrition/weekly
//
// The calorie target defaults to the preferences store's daily target and
// can be overridden with a ?target= query parameter.
func (h *APIHandlers) GetWeeklyNutrition(w http.ResponseWriter, r *http.Request) {
	target := h.calorieTarget(r)
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"target":    target,
			"days":      h.nutritionLog.WeeklyData(target),
			"adherence": h.nutritionLog.WeeklyAdherence(target),
		},
	})
}

func (h *APIHandlers) calorieTarget(r *http.Request) int {
	if raw := r.URL.Query().Get("target"); raw != "" {
		if target, err := strconv.Atoi(raw); err == nil && target > 0 {
			return target
		}
	}
	return h.preferences.State().DailyCalorieTarget
}
