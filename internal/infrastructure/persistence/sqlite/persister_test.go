package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

func newTestPersister(t *testing.T) *Persister {
	t.Helper()
	db, err := SetupDatabase("", gormLogger.Silent)
	require.NoError(t, err)
	return NewPersister(db, zap.NewNop())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	payload := []byte(`{"entries":[]}`)
	require.NoError(t, p.Save(ctx, "platewise.nutrition-log", payload))

	data, ok, err := p.Load(ctx, "platewise.nutrition-log")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, data)
}

func TestLoadAbsentKey(t *testing.T) {
	_, ok, err := newTestPersister(t).Load(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveUpserts(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	require.NoError(t, p.Save(ctx, "key", []byte(`{"v":1}`)))
	require.NoError(t, p.Save(ctx, "key", []byte(`{"v":2}`)))

	data, ok, err := p.Load(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":2}`), data)

	// The upsert replaced the row rather than adding one.
	var count int64
	require.NoError(t, p.db.Model(&StateModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	require.NoError(t, p.Save(ctx, "a", []byte(`{"v":"a"}`)))
	require.NoError(t, p.Save(ctx, "b", []byte(`{"v":"b"}`)))

	data, ok, err := p.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":"a"}`), data)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	require.NoError(t, p.Save(ctx, "key", []byte(`{}`)))
	require.NoError(t, p.Delete(ctx, "key"))

	_, ok, err := p.Load(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Delete(ctx, "key"))
}
