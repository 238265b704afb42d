// Package profile persists the per-user profile record exposed through the
// authenticated profile API. Updates are allow-listed: only the fields named
// here can ever be written, anything else in a request is dropped.
package profile

import (
	"context"
	"sync"

	"github.com/platewise/v1/internal/application/store"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// KeyPrefix namespaces profile records, one persisted key per user.
const KeyPrefix = "platewise.profile."

// State is the allow-listed profile field set.
type State struct {
	Name               string   `json:"name"`
	AvatarURL          string   `json:"avatar_url"`
	Bio                string   `json:"bio"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	HealthGoals        []string `json:"health_goals"`
	DailyCalorieTarget int      `json:"daily_calorie_target"`
	DailyProteinTarget int      `json:"daily_protein_target"`
	DailyCarbsTarget   int      `json:"daily_carbs_target"`
	DailyFatTarget     int      `json:"daily_fat_target"`
	MeasurementUnit    string   `json:"measurement_unit"`
}

// DefaultState returns an empty profile with metric units.
func DefaultState() State {
	return State{
		DietaryPreferences: []string{},
		Allergies:          []string{},
		HealthGoals:        []string{},
		MeasurementUnit:    "metric",
	}
}

// UpdateRequest carries an allow-listed partial update. Pointer fields
// distinguish "absent" from zero values; unknown JSON fields never reach
// this struct and are dropped at decode time.
type UpdateRequest struct {
	Name               *string   `json:"name"`
	AvatarURL          *string   `json:"avatar_url"`
	Bio                *string   `json:"bio"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	Allergies          *[]string `json:"allergies"`
	HealthGoals        *[]string `json:"health_goals"`
	DailyCalorieTarget *int      `json:"daily_calorie_target"`
	DailyProteinTarget *int      `json:"daily_protein_target"`
	DailyCarbsTarget   *int      `json:"daily_carbs_target"`
	DailyFatTarget     *int      `json:"daily_fat_target"`
	MeasurementUnit    *string   `json:"measurement_unit"`
}

// Service manages one profile store per user, created lazily.
type Service struct {
	persister outbound.StatePersister
	logger    *zap.Logger

	mu     sync.Mutex
	stores map[string]*store.Store[State]
}

// NewService creates the profile service on the given persistence backend.
func NewService(persister outbound.StatePersister, logger *zap.Logger) *Service {
	return &Service{
		persister: persister,
		logger:    logger.Named("profile"),
		stores:    make(map[string]*store.Store[State]),
	}
}

func (s *Service) storeFor(userID string) *store.Store[State] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[userID]; ok {
		return st
	}
	st := store.New(KeyPrefix+userID, DefaultState, s.persister, s.logger)
	s.stores[userID] = st
	return st
}

// Get returns the user's profile, defaults included for fresh users.
func (s *Service) Get(userID string) State {
	return s.storeFor(userID).Snapshot()
}

// Update applies the provided fields and returns the resulting profile.
func (s *Service) Update(ctx context.Context, userID string, req UpdateRequest) State {
	st := s.storeFor(userID)
	st.Update(ctx, func(p *State) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.AvatarURL != nil {
			p.AvatarURL = *req.AvatarURL
		}
		if req.Bio != nil {
			p.Bio = *req.Bio
		}
		if req.DietaryPreferences != nil {
			p.DietaryPreferences = *req.DietaryPreferences
		}
		if req.Allergies != nil {
			p.Allergies = *req.Allergies
		}
		if req.HealthGoals != nil {
			p.HealthGoals = *req.HealthGoals
		}
		if req.DailyCalorieTarget != nil {
			p.DailyCalorieTarget = *req.DailyCalorieTarget
		}
		if req.DailyProteinTarget != nil {
			p.DailyProteinTarget = *req.DailyProteinTarget
		}
		if req.DailyCarbsTarget != nil {
			p.DailyCarbsTarget = *req.DailyCarbsTarget
		}
		if req.DailyFatTarget != nil {
			p.DailyFatTarget = *req.DailyFatTarget
		}
		if req.MeasurementUnit != nil {
			p.MeasurementUnit = *req.MeasurementUnit
		}
	})
	return st.Snapshot()
}
