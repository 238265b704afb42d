package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPersister(t *testing.T) *Persister {
	t.Helper()
	p, err := NewPersister(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	payload := []byte(`{"items":[{"name":"eggs"}]}`)
	require.NoError(t, p.Save(ctx, "platewise.shopping-list", payload))

	data, ok, err := p.Load(ctx, "platewise.shopping-list")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, data)
}

func TestLoadAbsentKey(t *testing.T) {
	data, ok, err := newTestPersister(t).Load(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	require.NoError(t, p.Save(ctx, "key", []byte(`{"v":1}`)))
	require.NoError(t, p.Save(ctx, "key", []byte(`{"v":2}`)))

	data, ok, err := p.Load(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":2}`), data)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	p := newTestPersister(t)

	require.NoError(t, p.Save(ctx, "key", []byte(`{}`)))
	require.NoError(t, p.Delete(ctx, "key"))

	_, ok, err := p.Load(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, p.Delete(ctx, "key"))
}

func TestKeysCannotEscapeStateDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p, err := NewPersister(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, p.Save(ctx, "../escape", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p, err := NewPersister(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, p.Save(ctx, "key", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "key.json", entries[0].Name())
}
