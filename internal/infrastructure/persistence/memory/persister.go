// Package memory provides an in-memory state persister used by tests and
// sandboxed environments where no durable medium is available.
package memory

import (
	"context"
	"sync"

	"github.com/platewise/v1/internal/ports/outbound"
)

// Persister keeps persisted payloads in a process-local map.
type Persister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ outbound.StatePersister = (*Persister)(nil)

// NewPersister creates an empty in-memory persister.
func NewPersister() *Persister {
	return &Persister{data: make(map[string][]byte)}
}

// Save stores a copy of data under key.
func (p *Persister) Save(ctx context.Context, key string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	p.data[key] = buf
	return nil
}

// Load returns a copy of the payload stored under key.
func (p *Persister) Load(ctx context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	data, ok := p.data[key]
	if !ok {
		return nil, false, nil
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, true, nil
}

// Delete removes the payload stored under key.
func (p *Persister) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.data, key)
	return nil
}
