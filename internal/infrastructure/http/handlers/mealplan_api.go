package handlers

import (
	"errors"
	"net/http"

	"github.com/platewise/v1/internal/application/mealplan"
	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/go-chi/chi/v5"
)

// SetMealRequest places a recipe slot on a single-occupancy occasion.
// An empty date targets the currently selected date.
type SetMealRequest struct {
	Date     string        `json:"date" validate:"omitempty,datetime=2006-01-02"`
	MealType string        `json:"mealType" validate:"required,oneof=breakfast lunch dinner"`
	Slot     mealplan.Slot `json:"slot" validate:"required"`
}

// AddSnackRequest appends a snack slot to a day.
type AddSnackRequest struct {
	Date string        `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Slot mealplan.Slot `json:"slot" validate:"required"`
}

// SelectDateRequest focuses a date for subsequent add operations.
type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// GetMealPlan handles GET /api/v1/plan
func (h *APIHandlers) GetMealPlan(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.mealPlan.State(),
	})
}

// SetMeal handles POST /api/v1/plan/meals
func (h *APIHandlers) SetMeal(w http.ResponseWriter, r *http.Request) {
	var req SetMealRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.mealPlan.SetMeal(r.Context(), req.Date, nutrition.MealType(req.MealType), req.Slot)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.mealPlan.State(),
		Message: "Meal planned",
	})
}

// AddSnack handles POST /api/v1/plan/snacks
func (h *APIHandlers) AddSnack(w http.ResponseWriter, r *http.Request) {
	var req AddSnackRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.mealPlan.AddSnack(r.Context(), req.Date, req.Slot); err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.mealPlan.State(),
		Message: "Snack added",
	})
}

// SelectDate handles PUT /api/v1/plan/selected-date
func (h *APIHandlers) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.mealPlan.SelectDate(r.Context(), req.Date); err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Date selected"})
}

// ClearDay handles DELETE /api/v1/plan/days/{date}
func (h *APIHandlers) ClearDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := h.mealPlan.ClearDay(r.Context(), date); err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Day cleared"})
}

// RemoveMeal handles DELETE /api/v1/plan/days/{date}/{slot}
func (h *APIHandlers) RemoveMeal(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	slot := chi.URLParam(r, "slot")

	// The snacks occasion uses its list name in the URL.
	meal := nutrition.MealType(slot)
	if slot == "snacks" {
		meal = nutrition.MealSnack
	}

	if err := h.mealPlan.RemoveMeal(r.Context(), date, meal); err != nil {
		h.writePlanError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Meal removed"})
}

// ClearWeek handles DELETE /api/v1/plan
func (h *APIHandlers) ClearWeek(w http.ResponseWriter, r *http.Request) {
	h.mealPlan.ClearWeek(r.Context())
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Plan cleared"})
}

// GetDayTotals handles GET /api/v1/plan/days/{date}/totals
func (h *APIHandlers) GetDayTotals(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !nutrition.ValidDate(date) {
		h.writeError(w, http.StatusBadRequest, mealplan.ErrInvalidDate.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.mealPlan.DayTotals(date),
	})
}

func (h *APIHandlers) writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mealplan.ErrInvalidDate), errors.Is(err, mealplan.ErrInvalidMealSlot):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.writeError(w, http.StatusInternalServerError, "Meal plan operation failed")
	}
}
