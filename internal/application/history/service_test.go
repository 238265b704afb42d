package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(memory.NewPersister(), zap.NewNop())
}

func entry(id, name string) Entry {
	return Entry{ID: id, Name: name, SavedAt: "2026-03-02T12:00:00Z"}
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.AddFavorite(ctx, entry("r1", "Lentil Curry"))
	svc.AddFavorite(ctx, entry("r1", "Renamed Curry"))

	favorites := svc.Favorites()
	require.Len(t, favorites, 1)
	// The first save wins; refavoriting does not update the copy.
	assert.Equal(t, "Lentil Curry", favorites[0].Name)
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.AddFavorite(ctx, entry("r1", "first"))
	svc.AddFavorite(ctx, entry("r2", "second"))
	svc.AddFavorite(ctx, entry("r3", "third"))

	favorites := svc.Favorites()
	require.Len(t, favorites, 3)
	assert.Equal(t, "r1", favorites[0].ID)
	assert.Equal(t, "r3", favorites[2].ID)
}

func TestRemoveFavorite(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.AddFavorite(ctx, entry("r1", "first"))
	svc.AddFavorite(ctx, entry("r2", "second"))

	svc.RemoveFavorite(ctx, "r1")
	favorites := svc.Favorites()
	require.Len(t, favorites, 1)
	assert.Equal(t, "r2", favorites[0].ID)

	// Unknown ids are a safe no-op.
	svc.RemoveFavorite(ctx, "missing")
	assert.Len(t, svc.Favorites(), 1)
}

func TestIsFavorite(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	assert.False(t, svc.IsFavorite("r1"))
	svc.AddFavorite(ctx, entry("r1", "first"))
	assert.True(t, svc.IsFavorite("r1"))
}

func TestRecordViewPromotesToFront(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.RecordView(ctx, entry("r1", "first"))
	svc.RecordView(ctx, entry("r2", "second"))
	svc.RecordView(ctx, entry("r1", "first again"))

	viewed := svc.RecentlyViewed()
	require.Len(t, viewed, 2)
	assert.Equal(t, "r1", viewed[0].ID)
	assert.Equal(t, "r2", viewed[1].ID)
}

func TestRecordViewCapsAtRecentLimit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for i := 0; i < RecentLimit+5; i++ {
		svc.RecordView(ctx, entry(fmt.Sprintf("r%d", i), "recipe"))
	}

	viewed := svc.RecentlyViewed()
	require.Len(t, viewed, RecentLimit)
	// Newest first; the oldest five fell off the end.
	assert.Equal(t, fmt.Sprintf("r%d", RecentLimit+4), viewed[0].ID)
	assert.Equal(t, "r5", viewed[RecentLimit-1].ID)
}

func TestEntryFromRecipe(t *testing.T) {
	savedAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	r := recipe.Recipe{
		ID:       "r1",
		Title:    "Salmon Bowl",
		ImageURL: "https://example.com/salmon.jpg",
		CookTime: 25,
		Nutrition: recipe.Nutrition{
			Calories: 520,
			Protein:  38,
			Carbs:    42,
			Fat:      22,
		},
	}

	e := EntryFromRecipe(r, savedAt)
	assert.Equal(t, "r1", e.ID)
	assert.Equal(t, "Salmon Bowl", e.Name)
	assert.Equal(t, float64(520), e.Calories)
	assert.Equal(t, 25, e.CookTime)
	assert.Equal(t, "2026-03-02T12:00:00Z", e.SavedAt)
}

func TestHistorySurvivesRestart(t *testing.T) {
	ctx := context.Background()
	persister := memory.NewPersister()

	svc := NewService(persister, zap.NewNop())
	svc.AddFavorite(ctx, entry("r1", "first"))
	svc.RecordView(ctx, entry("r2", "second"))

	reopened := NewService(persister, zap.NewNop())
	assert.True(t, reopened.IsFavorite("r1"))
	require.Len(t, reopened.RecentlyViewed(), 1)
	assert.Equal(t, "r2", reopened.RecentlyViewed()[0].ID)
}
