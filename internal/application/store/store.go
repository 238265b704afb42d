// Package store provides the persisted store primitive shared by every state
// container. A store owns one state value, applies mutations in memory, and
// writes the whole state to its persistence backend after each change.
// In-memory state is always authoritative: reads immediately after a write
// observe the write whether or not persistence succeeded.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Store wraps a state value of type S with save-on-mutate persistence.
// Persistence failures are logged through the injected logger and never
// surfaced to mutator callers.
type Store[S any] struct {
	key       string
	defaults  func() S
	persister outbound.StatePersister
	logger    *zap.Logger

	mu    sync.RWMutex
	state S
}

// New creates a store and restores any state persisted under key. Fields
// missing from the persisted payload keep their default values and unknown
// fields are ignored, so persisted state survives schema growth in both
// directions. A corrupt payload is discarded in favor of the defaults.
func New[S any](key string, defaults func() S, persister outbound.StatePersister, logger *zap.Logger) *Store[S] {
	s := &Store[S]{
		key:       key,
		defaults:  defaults,
		persister: persister,
		logger:    logger,
		state:     defaults(),
	}
	s.restore()
	return s
}

func (s *Store[S]) restore() {
	data, ok, err := s.persister.Load(context.Background(), s.key)
	if err != nil {
		s.logger.Warn("state restore failed, starting from defaults",
			zap.String("key", s.key),
			zap.Error(err))
		return
	}
	if !ok {
		return
	}

	// Unmarshal over a fresh defaults value so absent fields fall back.
	state := s.defaults()
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("discarding corrupt persisted state",
			zap.String("key", s.key),
			zap.Error(err))
		return
	}
	s.state = state
}

// Snapshot returns a deep copy of the current state. The copy shares no
// collections with the store, so callers may marshal or modify it while
// mutators keep running.
func (s *Store[S]) Snapshot() S {
	s.mu.RLock()
	data, err := s.encode()
	s.mu.RUnlock()

	state := s.defaults()
	if err != nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Error("state copy failed",
			zap.String("key", s.key),
			zap.Error(err))
	}
	return state
}

// Update applies fn to the state and persists the result. The in-memory
// change is visible to subsequent reads even when persistence fails.
func (s *Store[S]) Update(ctx context.Context, fn func(*S)) {
	s.mu.Lock()
	fn(&s.state)
	data, err := s.encode()
	s.mu.Unlock()

	if err != nil {
		return
	}
	s.persist(ctx, data)
}

// Reset restores the defaults and persists them.
func (s *Store[S]) Reset(ctx context.Context) {
	s.mu.Lock()
	s.state = s.defaults()
	data, err := s.encode()
	s.mu.Unlock()

	if err != nil {
		return
	}
	s.persist(ctx, data)
}

// encode marshals the state for persistence and snapshot copies. Callers
// must hold the lock; marshaling inside it keeps the codec off live
// collections that a concurrent mutator could be writing.
func (s *Store[S]) encode() ([]byte, error) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Error("state serialization failed",
			zap.String("key", s.key),
			zap.Error(err))
	}
	return data, err
}

func (s *Store[S]) persist(ctx context.Context, data []byte) {
	if err := s.persister.Save(ctx, s.key, data); err != nil {
		s.logger.Warn("state persistence failed, in-memory state remains authoritative",
			zap.String("key", s.key),
			zap.Error(err))
	}
}

// Key returns the persistence key the store writes under.
func (s *Store[S]) Key() string {
	return s.key
}
