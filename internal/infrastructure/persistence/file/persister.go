// Package file persists store states as JSON documents on the local
// filesystem, one file per store key. This is the default durable medium for
// single-user deployments.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// Persister writes each store state to <dir>/<key>.json.
type Persister struct {
	dir    string
	logger *zap.Logger
}

var _ outbound.StatePersister = (*Persister)(nil)

// NewPersister creates the state directory if needed and returns a persister
// rooted there.
func NewPersister(dir string, logger *zap.Logger) (*Persister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Persister{dir: dir, logger: logger}, nil
}

// path maps a store key to a file path. Keys are flat identifiers; path
// separators are flattened so a key can never escape the state directory.
func (p *Persister) path(key string) string {
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	name = strings.ReplaceAll(name, "..", "_")
	return filepath.Join(p.dir, name+".json")
}

// Save writes the payload through a temp file and renames it into place so a
// crash mid-write never leaves a truncated state file.
func (p *Persister) Save(ctx context.Context, key string, data []byte) error {
	target := p.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperrors.NewPersistenceError("write state file", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return apperrors.NewPersistenceError("replace state file", err)
	}
	return nil
}

// Load reads the payload for key. A missing file means no state was
// persisted yet.
func (p *Persister) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(p.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewPersistenceError("read state file", err)
	}
	return data, true, nil
}

// Delete removes the state file for key.
func (p *Persister) Delete(ctx context.Context, key string) error {
	if err := os.Remove(p.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.NewPersistenceError("remove state file", err)
	}
	return nil
}
