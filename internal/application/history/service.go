// Package history holds the recipe history store: a deduplicated favorites
// list and a bounded recently-viewed list with promote-on-review semantics.
package history

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/application/store"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// StorageKey is the persistence key for the recipe history store.
const StorageKey = "platewise.recipe-history"

// RecentLimit caps the recently-viewed list; the oldest entry is evicted
// once the cap is reached.
const RecentLimit = 20

// Entry is a recipe remembered by the history store, copied by value at the
// moment it was saved or viewed.
type Entry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	CookTime int     `json:"cookTime"`
	SavedAt  string  `json:"savedAt"`
}

// EntryFromRecipe projects a generated recipe into a history entry.
func EntryFromRecipe(r recipe.Recipe, savedAt time.Time) Entry {
	return Entry{
		ID:       r.ID,
		Name:     r.Title,
		Image:    r.ImageURL,
		Calories: r.Nutrition.Calories,
		Protein:  r.Nutrition.Protein,
		Carbs:    r.Nutrition.Carbs,
		Fat:      r.Nutrition.Fat,
		CookTime: r.CookTime,
		SavedAt:  savedAt.Format(time.RFC3339),
	}
}

// State is the persisted recipe history shape.
type State struct {
	Favorites      []Entry `json:"favorites"`
	RecentlyViewed []Entry `json:"recentlyViewed"`
}

// DefaultState returns an empty history.
func DefaultState() State {
	return State{
		Favorites:      []Entry{},
		RecentlyViewed: []Entry{},
	}
}

// Service is the recipe history store.
type Service struct {
	store *store.Store[State]
}

// NewService creates the history store on the given persistence backend.
func NewService(persister outbound.StatePersister, logger *zap.Logger) *Service {
	return &Service{
		store: store.New(StorageKey, DefaultState, persister, logger.Named("history")),
	}
}

// State returns a snapshot of the current history.
func (s *Service) State() State {
	return s.store.Snapshot()
}

// Favorites returns the favorites in insertion order, most recently
// favorited last.
func (s *Service) Favorites() []Entry {
	snap := s.store.Snapshot()
	out := make([]Entry, len(snap.Favorites))
	copy(out, snap.Favorites)
	return out
}

// RecentlyViewed returns the viewed list, most recently viewed first.
func (s *Service) RecentlyViewed() []Entry {
	snap := s.store.Snapshot()
	out := make([]Entry, len(snap.RecentlyViewed))
	copy(out, snap.RecentlyViewed)
	return out
}

// AddFavorite appends the entry to the favorites list. Favoriting an
// already-favorited id is a no-op, not an update: the stored copy keeps the
// values from the first save.
func (s *Service) AddFavorite(ctx context.Context, entry Entry) {
	s.store.Update(ctx, func(st *State) {
		for _, existing := range st.Favorites {
			if existing.ID == entry.ID {
				return
			}
		}
		st.Favorites = append(st.Favorites, entry)
	})
}

// RemoveFavorite filters the entry out. Unknown ids are a safe no-op.
func (s *Service) RemoveFavorite(ctx context.Context, id string) {
	s.store.Update(ctx, func(st *State) {
		kept := st.Favorites[:0]
		for _, f := range st.Favorites {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		st.Favorites = kept
	})
}

// IsFavorite reports whether the id is currently favorited.
func (s *Service) IsFavorite(id string) bool {
	for _, f := range s.store.Snapshot().Favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// RecordView promotes the entry to the front of the recently-viewed list,
// removing any earlier occurrence of the same id, then truncates the list to
// RecentLimit.
func (s *Service) RecordView(ctx context.Context, entry Entry) {
	s.store.Update(ctx, func(st *State) {
		viewed := make([]Entry, 0, len(st.RecentlyViewed)+1)
		viewed = append(viewed, entry)
		for _, v := range st.RecentlyViewed {
			if v.ID != entry.ID {
				viewed = append(viewed, v)
			}
		}
		if len(viewed) > RecentLimit {
			viewed = viewed[:RecentLimit]
		}
		st.RecentlyViewed = viewed
	})
}
