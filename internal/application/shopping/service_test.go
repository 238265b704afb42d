package shopping

import (
	"context"
	"testing"

	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(memory.NewPersister(), zap.NewNop())
}

func TestAddItemAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	item := svc.AddItem(ctx, NewItem{Name: "onions", Quantity: "3", Category: "produce"})

	assert.NotEmpty(t, item.ID)
	assert.False(t, item.Checked)
	assert.Equal(t, "onions", item.Name)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestAddItemDoesNotDedupe(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first := svc.AddItem(ctx, NewItem{Name: "milk", Quantity: "1L"})
	second := svc.AddItem(ctx, NewItem{Name: "milk", Quantity: "1L"})

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, svc.Items(), 2)
}

func TestToggleItemRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	item := svc.AddItem(ctx, NewItem{Name: "eggs", Quantity: "12"})

	svc.ToggleItem(ctx, item.ID)
	assert.True(t, svc.Items()[0].Checked)

	svc.ToggleItem(ctx, item.ID)
	assert.False(t, svc.Items()[0].Checked)
}

func TestToggleAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.AddItem(ctx, NewItem{Name: "eggs", Quantity: "12"})
	svc.ToggleItem(ctx, "missing")

	assert.False(t, svc.Items()[0].Checked)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	item := svc.AddItem(ctx, NewItem{Name: "eggs", Quantity: "12"})
	svc.AddItem(ctx, NewItem{Name: "flour", Quantity: "1kg"})

	svc.RemoveItem(ctx, item.ID)
	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "flour", items[0].Name)
}

func TestClearCheckedPreservesUnchecked(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	bought := svc.AddItem(ctx, NewItem{Name: "butter", Quantity: "250g"})
	svc.AddItem(ctx, NewItem{Name: "bread", Quantity: "1"})
	alsoBought := svc.AddItem(ctx, NewItem{Name: "jam", Quantity: "1 jar"})

	svc.ToggleItem(ctx, bought.ID)
	svc.ToggleItem(ctx, alsoBought.ID)
	svc.ClearChecked(ctx)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "bread", items[0].Name)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.AddItem(ctx, NewItem{Name: "butter", Quantity: "250g"})
	svc.AddItem(ctx, NewItem{Name: "bread", Quantity: "1"})
	svc.ClearAll(ctx)

	assert.Empty(t, svc.Items())
}

func TestListSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	persister := memory.NewPersister()

	svc := NewService(persister, zap.NewNop())
	item := svc.AddItem(ctx, NewItem{Name: "rice", Quantity: "2kg", RecipeID: "r1", RecipeName: "Curry"})
	svc.ToggleItem(ctx, item.ID)

	reopened := NewService(persister, zap.NewNop())
	items := reopened.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Checked)
	assert.Equal(t, "Curry", items[0].RecipeName)
}
