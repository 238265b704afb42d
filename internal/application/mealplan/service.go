// Package mealplan holds the date-keyed meal plan store. Each calendar day
// carries up to three single-occupancy slots (breakfast, lunch, dinner) and
// an open-ended snack list. The plan is technically unbounded; "weekly" is a
// UI framing, not a storage constraint.
package mealplan

import (
	"context"

	"github.com/platewise/v1/internal/application/store"
	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// StorageKey is the persistence key for the meal plan store.
const StorageKey = "platewise.meal-plan"

// Slot places a recipe in a day's plan. Nutrition values are already scaled
// for the recorded servings. A placed slot is immutable: it only changes by
// full replacement or removal.
type Slot struct {
	ID          string  `json:"id"`
	RecipeID    string  `json:"recipeId"`
	RecipeName  string  `json:"recipeName"`
	RecipeImage string  `json:"recipeImage"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Servings    int     `json:"servings"`
}

// Nutrients returns the slot's macro contribution.
func (s Slot) Nutrients() nutrition.Nutrients {
	return nutrition.Nutrients{
		Calories: s.Calories,
		Protein:  s.Protein,
		Carbs:    s.Carbs,
		Fat:      s.Fat,
	}
}

// SlotFromRecipe projects a generated recipe into a slot, scaling its
// per-serving nutrition by the requested servings.
func SlotFromRecipe(r recipe.Recipe, servings int) Slot {
	if servings < 1 {
		servings = 1
	}
	factor := float64(servings)
	return Slot{
		ID:          r.ID,
		RecipeID:    r.ID,
		RecipeName:  r.Title,
		RecipeImage: r.ImageURL,
		Calories:    r.Nutrition.Calories * factor,
		Protein:     r.Nutrition.Protein * factor,
		Carbs:       r.Nutrition.Carbs * factor,
		Fat:         r.Nutrition.Fat * factor,
		Servings:    servings,
	}
}

// DayPlan is one calendar day's slot assignments. A nil slot means nothing
// is planned for that occasion.
type DayPlan struct {
	Breakfast *Slot  `json:"breakfast"`
	Lunch     *Slot  `json:"lunch"`
	Dinner    *Slot  `json:"dinner"`
	Snacks    []Slot `json:"snacks"`
}

// State is the persisted meal plan shape.
type State struct {
	// Days maps YYYY-MM-DD date keys to plans. A key exists only once a
	// slot for that date has been touched; readers treat absent dates as
	// empty plans.
	Days map[string]DayPlan `json:"days"`

	// SelectedDate is the currently focused date, the default target for
	// add operations that omit an explicit date.
	SelectedDate string `json:"selectedDate"`
}

// DefaultState returns an empty plan focused on today.
func DefaultState() State {
	return State{
		Days:         map[string]DayPlan{},
		SelectedDate: nutrition.Today(),
	}
}

// Service is the meal plan store.
type Service struct {
	store *store.Store[State]
}

// NewService creates the meal plan store on the given persistence backend.
func NewService(persister outbound.StatePersister, logger *zap.Logger) *Service {
	return &Service{
		store: store.New(StorageKey, DefaultState, persister, logger.Named("mealplan")),
	}
}

// State returns a snapshot of the current plan.
func (s *Service) State() State {
	return s.store.Snapshot()
}

// SelectedDate returns the currently focused date.
func (s *Service) SelectedDate() string {
	return s.store.Snapshot().SelectedDate
}

// SelectDate focuses a date for subsequent add operations.
func (s *Service) SelectDate(ctx context.Context, date string) error {
	if !nutrition.ValidDate(date) {
		return ErrInvalidDate
	}
	s.store.Update(ctx, func(st *State) {
		st.SelectedDate = date
	})
	return nil
}

// SetMeal places a slot on one of the single-occupancy occasions, replacing
// any prior occupant. The date entry is created lazily on first use; an
// empty date targets the selected date.
func (s *Service) SetMeal(ctx context.Context, date string, meal nutrition.MealType, slot Slot) error {
	switch meal {
	case nutrition.MealBreakfast, nutrition.MealLunch, nutrition.MealDinner:
	default:
		return ErrInvalidMealSlot
	}
	if date != "" && !nutrition.ValidDate(date) {
		return ErrInvalidDate
	}

	s.store.Update(ctx, func(st *State) {
		ensure(st)
		target := date
		if target == "" {
			target = st.SelectedDate
		}
		day := st.Days[target]
		switch meal {
		case nutrition.MealBreakfast:
			day.Breakfast = &slot
		case nutrition.MealLunch:
			day.Lunch = &slot
		case nutrition.MealDinner:
			day.Dinner = &slot
		}
		st.Days[target] = day
	})
	return nil
}

// AddSnack appends a slot to the date's snack list. Snacks are neither
// deduplicated nor capped. An empty date targets the selected date.
func (s *Service) AddSnack(ctx context.Context, date string, slot Slot) error {
	if date != "" && !nutrition.ValidDate(date) {
		return ErrInvalidDate
	}

	s.store.Update(ctx, func(st *State) {
		ensure(st)
		target := date
		if target == "" {
			target = st.SelectedDate
		}
		day := st.Days[target]
		day.Snacks = append(day.Snacks, slot)
		st.Days[target] = day
	})
	return nil
}

// ClearDay resets every slot for the date. The date key stays in the map
// once touched; clearing a date that was never planned is a no-op and
// creates no entry.
func (s *Service) ClearDay(ctx context.Context, date string) error {
	if !nutrition.ValidDate(date) {
		return ErrInvalidDate
	}
	s.store.Update(ctx, func(st *State) {
		ensure(st)
		if _, ok := st.Days[date]; !ok {
			return
		}
		st.Days[date] = DayPlan{}
	})
	return nil
}

// ClearWeek empties the entire plan map.
func (s *Service) ClearWeek(ctx context.Context) {
	s.store.Update(ctx, func(st *State) {
		st.Days = map[string]DayPlan{}
	})
}

// RemoveMeal nulls one named slot, or empties the snack list when the snack
// occasion is named. Unknown dates are a safe no-op.
func (s *Service) RemoveMeal(ctx context.Context, date string, meal nutrition.MealType) error {
	if !meal.Valid() {
		return ErrInvalidMealSlot
	}
	if !nutrition.ValidDate(date) {
		return ErrInvalidDate
	}

	s.store.Update(ctx, func(st *State) {
		ensure(st)
		day, ok := st.Days[date]
		if !ok {
			return
		}
		switch meal {
		case nutrition.MealBreakfast:
			day.Breakfast = nil
		case nutrition.MealLunch:
			day.Lunch = nil
		case nutrition.MealDinner:
			day.Dinner = nil
		case nutrition.MealSnack:
			day.Snacks = []Slot{}
		}
		st.Days[date] = day
	})
	return nil
}

// DayTotals sums nutrition across every slot planned for the date.
func (s *Service) DayTotals(date string) nutrition.Nutrients {
	return DayTotals(s.store.Snapshot(), date)
}

// DayTotals is the pure aggregation over a plan snapshot. Absent dates and
// empty slots contribute zero.
func DayTotals(st State, date string) nutrition.Nutrients {
	day, ok := st.Days[date]
	if !ok {
		return nutrition.Nutrients{}
	}

	var total nutrition.Nutrients
	for _, slot := range []*Slot{day.Breakfast, day.Lunch, day.Dinner} {
		if slot != nil {
			total = total.Add(slot.Nutrients())
		}
	}
	for _, snack := range day.Snacks {
		total = total.Add(snack.Nutrients())
	}
	return total
}

// ensure repairs collections that a hand-edited or legacy payload may have
// nulled out.
func ensure(st *State) {
	if st.Days == nil {
		st.Days = map[string]DayPlan{}
	}
	if st.SelectedDate == "" {
		st.SelectedDate = nutrition.Today()
	}
}
