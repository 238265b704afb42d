// Package preferences holds the user's dietary configuration store: diet
// tags, allergies, goals, calorie target, units and serving size. Pure CRUD
// with defaults and an atomic reset; no derived computation.
package preferences

import (
	"context"

	"github.com/platewise/v1/internal/application/store"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// StorageKey is the persistence key for the preferences store.
const StorageKey = "platewise.preferences"

// MeasurementUnit selects between metric and imperial display units.
type MeasurementUnit string

const (
	UnitMetric   MeasurementUnit = "metric"
	UnitImperial MeasurementUnit = "imperial"
)

// Defaults applied on first use and restored by Reset.
const (
	DefaultCalorieTarget = 2000
	DefaultServingSize   = 2
)

// State is the full persisted shape of the preferences store. Tag lists are
// sets: unordered with duplicates discarded on write.
type State struct {
	DietaryPreferences []string        `json:"dietaryPreferences"`
	Allergies          []string        `json:"allergies"`
	HealthGoals        []string        `json:"healthGoals"`
	DailyCalorieTarget int             `json:"dailyCalorieTarget"`
	MeasurementUnit    MeasurementUnit `json:"measurementUnit"`
	ServingSize        int             `json:"servingSize"`
}

// DefaultState returns the fresh-install preferences.
func DefaultState() State {
	return State{
		DietaryPreferences: []string{},
		Allergies:          []string{},
		HealthGoals:        []string{},
		DailyCalorieTarget: DefaultCalorieTarget,
		MeasurementUnit:    UnitMetric,
		ServingSize:        DefaultServingSize,
	}
}

// Service is the preferences store. Setters replace the named field
// wholesale; list setters overwrite rather than append.
type Service struct {
	store *store.Store[State]
}

// NewService creates the preferences store on the given persistence backend.
func NewService(persister outbound.StatePersister, logger *zap.Logger) *Service {
	return &Service{
		store: store.New(StorageKey, DefaultState, persister, logger.Named("preferences")),
	}
}

// State returns a snapshot of the current preferences.
func (s *Service) State() State {
	return s.store.Snapshot()
}

// SetDietaryPreferences replaces the diet tag set.
func (s *Service) SetDietaryPreferences(ctx context.Context, tags []string) {
	s.store.Update(ctx, func(st *State) {
		st.DietaryPreferences = dedupe(tags)
	})
}

// SetAllergies replaces the allergy set.
func (s *Service) SetAllergies(ctx context.Context, allergies []string) {
	s.store.Update(ctx, func(st *State) {
		st.Allergies = dedupe(allergies)
	})
}

// SetHealthGoals replaces the goal tag set.
func (s *Service) SetHealthGoals(ctx context.Context, goals []string) {
	s.store.Update(ctx, func(st *State) {
		st.HealthGoals = dedupe(goals)
	})
}

// SetDailyCalorieTarget sets the calorie target. Non-positive values are
// clamped to 1 rather than rejected, so a bad client value can never wedge
// the adherence math at a division by zero.
func (s *Service) SetDailyCalorieTarget(ctx context.Context, target int) {
	if target < 1 {
		target = 1
	}
	s.store.Update(ctx, func(st *State) {
		st.DailyCalorieTarget = target
	})
}

// SetServingSize sets the default serving size, clamped to at least 1.
func (s *Service) SetServingSize(ctx context.Context, size int) {
	if size < 1 {
		size = 1
	}
	s.store.Update(ctx, func(st *State) {
		st.ServingSize = size
	})
}

// SetMeasurementUnit switches between metric and imperial units.
func (s *Service) SetMeasurementUnit(ctx context.Context, unit MeasurementUnit) error {
	if unit != UnitMetric && unit != UnitImperial {
		return ErrInvalidUnit
	}
	s.store.Update(ctx, func(st *State) {
		st.MeasurementUnit = unit
	})
	return nil
}

// Reset restores every field to its default atomically.
func (s *Service) Reset(ctx context.Context) {
	s.store.Reset(ctx)
}

// dedupe copies the list, dropping repeated values while keeping first-seen
// order stable.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
