// Package nutritionlog holds the consumed-food ledger: an append-only,
// date-stamped list of entries with derived daily totals, a trailing weekly
// calorie series and an adherence score against a calorie target.
package nutritionlog

import (
	"context"

	"github.com/platewise/v1/internal/application/store"
	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey is the persistence key for the nutrition log store.
const StorageKey = "platewise.nutrition-log"

// Entry is one logged food. Entries are immutable once appended; they are
// only ever removed by id. Multiple entries may share a date.
type Entry struct {
	ID       string             `json:"id"`
	Date     string             `json:"date"`
	MealType nutrition.MealType `json:"mealType"`
	Name     string             `json:"name"`
	Calories float64            `json:"calories"`
	Protein  float64            `json:"protein"`
	Carbs    float64            `json:"carbs"`
	Fat      float64            `json:"fat"`
}

// Nutrients returns the entry's macro contribution.
func (e Entry) Nutrients() nutrition.Nutrients {
	return nutrition.Nutrients{
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
	}
}

// NewEntry describes an entry before the store assigns its identity.
type NewEntry struct {
	Date     string
	MealType nutrition.MealType
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// State is the persisted nutrition log shape.
type State struct {
	Entries []Entry `json:"entries"`
}

// DefaultState returns an empty ledger.
func DefaultState() State {
	return State{Entries: []Entry{}}
}

// Service is the nutrition log store.
type Service struct {
	store *store.Store[State]
}

// NewService creates the nutrition log store on the given persistence backend.
func NewService(persister outbound.StatePersister, logger *zap.Logger) *Service {
	return &Service{
		store: store.New(StorageKey, DefaultState, persister, logger.Named("nutritionlog")),
	}
}

// State returns a snapshot of the current ledger.
func (s *Service) State() State {
	return s.store.Snapshot()
}

// AddEntry validates the date and meal type, assigns an id and appends.
func (s *Service) AddEntry(ctx context.Context, in NewEntry) (Entry, error) {
	if !nutrition.ValidDate(in.Date) {
		return Entry{}, ErrInvalidDate
	}
	if !in.MealType.Valid() {
		return Entry{}, ErrInvalidMealType
	}

	entry := Entry{
		ID:       uuid.New().String(),
		Date:     in.Date,
		MealType: in.MealType,
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}
	s.store.Update(ctx, func(st *State) {
		st.Entries = append(st.Entries, entry)
	})
	return entry, nil
}

// RemoveEntry deletes an entry by id. Unknown ids are a safe no-op.
func (s *Service) RemoveEntry(ctx context.Context, id string) {
	s.store.Update(ctx, func(st *State) {
		kept := st.Entries[:0]
		for _, e := range st.Entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		st.Entries = kept
	})
}

// EntriesForDate returns the date's entries in insertion order.
func (s *Service) EntriesForDate(date string) []Entry {
	return EntriesForDate(s.store.Snapshot(), date)
}

// DailyTotals sums macros across the date's entries; zero if none.
func (s *Service) DailyTotals(date string) nutrition.Nutrients {
	return DailyTotals(s.store.Snapshot(), date)
}
