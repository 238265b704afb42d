// Package shopping holds the shopping list store: a flat, insertion-ordered
// collection of purchasable items with a checked flag and bulk clearing.
package shopping

import (
	"context"

	"github.com/platewise/v1/internal/application/store"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey is the persistence key for the shopping list store.
const StorageKey = "platewise.shopping-list"

// Item is a purchasable shopping list entry. Quantity is free text so
// non-numeric amounts like "a pinch" survive round trips. RecipeID and
// RecipeName record provenance by value only.
type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
	Category   string `json:"category"`
	Checked    bool   `json:"checked"`
	RecipeID   string `json:"recipeId,omitempty"`
	RecipeName string `json:"recipeName,omitempty"`
}

// NewItem describes an item before the store assigns its identity.
type NewItem struct {
	Name       string
	Quantity   string
	Unit       string
	Category   string
	RecipeID   string
	RecipeName string
}

// State is the persisted shopping list shape.
type State struct {
	Items []Item `json:"items"`
}

// DefaultState returns an empty list.
func DefaultState() State {
	return State{Items: []Item{}}
}

// Service is the shopping list store.
type Service struct {
	store *store.Store[State]
}

// NewService creates the shopping list store on the given persistence backend.
func NewService(persister outbound.StatePersister, logger *zap.Logger) *Service {
	return &Service{
		store: store.New(StorageKey, DefaultState, persister, logger.Named("shopping")),
	}
}

// Items returns the list in insertion order.
func (s *Service) Items() []Item {
	snap := s.store.Snapshot()
	out := make([]Item, len(snap.Items))
	copy(out, snap.Items)
	return out
}

// AddItem assigns an id, defaults checked to false and appends. The list is
// not deduplicated: adding the same name twice creates two entries.
func (s *Service) AddItem(ctx context.Context, in NewItem) Item {
	item := Item{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Quantity:   in.Quantity,
		Unit:       in.Unit,
		Category:   in.Category,
		Checked:    false,
		RecipeID:   in.RecipeID,
		RecipeName: in.RecipeName,
	}
	s.store.Update(ctx, func(st *State) {
		st.Items = append(st.Items, item)
	})
	return item
}

// ToggleItem flips the checked flag. Unknown ids are a safe no-op.
func (s *Service) ToggleItem(ctx context.Context, id string) {
	s.store.Update(ctx, func(st *State) {
		for i := range st.Items {
			if st.Items[i].ID == id {
				st.Items[i].Checked = !st.Items[i].Checked
				return
			}
		}
	})
}

// RemoveItem deletes the item. Unknown ids are a safe no-op.
func (s *Service) RemoveItem(ctx context.Context, id string) {
	s.store.Update(ctx, func(st *State) {
		kept := st.Items[:0]
		for _, item := range st.Items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		st.Items = kept
	})
}

// ClearChecked removes every checked item, preserving the relative order of
// the rest.
func (s *Service) ClearChecked(ctx context.Context) {
	s.store.Update(ctx, func(st *State) {
		kept := st.Items[:0]
		for _, item := range st.Items {
			if !item.Checked {
				kept = append(kept, item)
			}
		}
		st.Items = kept
	})
}

// ClearAll empties the list.
func (s *Service) ClearAll(ctx context.Context) {
	s.store.Update(ctx, func(st *State) {
		st.Items = []Item{}
	})
}
