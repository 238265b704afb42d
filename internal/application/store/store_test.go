package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type testState struct {
	Name    string            `json:"name"`
	Count   int               `json:"count"`
	Tags    []string          `json:"tags"`
	Labels  map[string]string `json:"labels"`
	Enabled bool              `json:"enabled"`
}

func testDefaults() testState {
	return testState{
		Name:    "fresh",
		Count:   10,
		Tags:    []string{},
		Labels:  map[string]string{},
		Enabled: true,
	}
}

// failingPersister rejects every save so tests can observe that in-memory
// state stays authoritative.
type failingPersister struct{}

func (failingPersister) Save(ctx context.Context, key string, data []byte) error {
	return errors.New("backend unavailable")
}

func (failingPersister) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (failingPersister) Delete(ctx context.Context, key string) error {
	return errors.New("backend unavailable")
}

type StoreTestSuite struct {
	suite.Suite
	persister *memory.Persister
}

func (s *StoreTestSuite) SetupTest() {
	s.persister = memory.NewPersister()
}

func (s *StoreTestSuite) newStore() *Store[testState] {
	return New("test.state", testDefaults, s.persister, zap.NewNop())
}

func (s *StoreTestSuite) TestFreshStoreStartsFromDefaults() {
	st := s.newStore()
	s.Equal(testDefaults(), st.Snapshot())
}

func (s *StoreTestSuite) TestUpdatePersistsAndRestores() {
	st := s.newStore()
	st.Update(context.Background(), func(t *testState) {
		t.Name = "changed"
		t.Count = 42
		t.Tags = append(t.Tags, "a", "b")
	})

	// A second store on the same backend sees the persisted state.
	restored := s.newStore()
	snap := restored.Snapshot()
	s.Equal("changed", snap.Name)
	s.Equal(42, snap.Count)
	s.Equal([]string{"a", "b"}, snap.Tags)
}

func (s *StoreTestSuite) TestPartialPayloadMergesOverDefaults() {
	// A payload from an older schema carries only some fields.
	err := s.persister.Save(context.Background(), "test.state", []byte(`{"name":"old"}`))
	s.Require().NoError(err)

	snap := s.newStore().Snapshot()
	s.Equal("old", snap.Name)
	s.Equal(10, snap.Count)
	s.True(snap.Enabled)
}

func (s *StoreTestSuite) TestUnknownFieldsAreIgnored() {
	err := s.persister.Save(context.Background(), "test.state",
		[]byte(`{"name":"kept","retired_field":123}`))
	s.Require().NoError(err)

	s.Equal("kept", s.newStore().Snapshot().Name)
}

func (s *StoreTestSuite) TestCorruptPayloadFallsBackToDefaults() {
	err := s.persister.Save(context.Background(), "test.state", []byte(`{not json`))
	s.Require().NoError(err)

	s.Equal(testDefaults(), s.newStore().Snapshot())
}

func (s *StoreTestSuite) TestResetRestoresDefaults() {
	st := s.newStore()
	st.Update(context.Background(), func(t *testState) {
		t.Count = 99
	})
	st.Reset(context.Background())

	s.Equal(testDefaults(), st.Snapshot())
	s.Equal(testDefaults(), s.newStore().Snapshot())
}

func (s *StoreTestSuite) TestSnapshotSharesNothingWithStore() {
	st := s.newStore()
	st.Update(context.Background(), func(t *testState) {
		t.Tags = append(t.Tags, "keep")
		t.Labels["color"] = "green"
	})

	snap := st.Snapshot()
	snap.Tags[0] = "clobbered"
	snap.Labels["color"] = "red"
	delete(snap.Labels, "color")

	fresh := st.Snapshot()
	s.Equal([]string{"keep"}, fresh.Tags)
	s.Equal("green", fresh.Labels["color"])
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

// Exercises snapshot marshaling against a busy mutator; the race detector
// flags any aliasing between snapshots and live state.
func TestSnapshotSafeDuringConcurrentUpdates(t *testing.T) {
	st := New("test.state", testDefaults, memory.NewPersister(), zap.NewNop())

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			st.Update(context.Background(), func(ts *testState) {
				ts.Labels[strconv.Itoa(i%8)] = "v"
				ts.Tags = append(ts.Tags, "t")
			})
		}
	}()

	for i := 0; i < 200; i++ {
		if _, err := json.Marshal(st.Snapshot()); err != nil {
			t.Fatalf("marshal snapshot: %v", err)
		}
	}
	close(done)
	wg.Wait()
}

func TestUpdateSurvivesPersistenceFailure(t *testing.T) {
	st := New("test.state", testDefaults, failingPersister{}, zap.NewNop())

	st.Update(context.Background(), func(t *testState) {
		t.Count = 7
	})

	assert.Equal(t, 7, st.Snapshot().Count)
}

func TestKey(t *testing.T) {
	st := New("platewise.example", testDefaults, memory.NewPersister(), zap.NewNop())
	require.Equal(t, "platewise.example", st.Key())
}
