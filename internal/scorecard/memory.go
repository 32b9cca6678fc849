// internal/scorecard/memory.go
//
// In-memory implementation of the Store interface.
// Used by tests and by callers that do not want anything written to disk.
//
// Characteristics:
//   - Scorecards are kept per game type in append order.
//   - Concurrency-safe via RWMutex.
//   - LoadAll returns a copy; callers never see the live slice.
//   - State is lost when the process exits.

package scorecard

import (
	"context"
	"errors"
	"sync"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu    sync.RWMutex              // guards cards
	cards map[game.Type][]Scorecard // keyed by Scorecard.Game()
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cards: make(map[game.Type][]Scorecard)}
}

// Append adds sc to its game's sequence.
func (m *MemoryStore) Append(ctx context.Context, sc Scorecard) error {
	if sc == nil {
		return &WriteError{Path: "memory", Err: errors.New("nil scorecard")}
	}
	sc = deref(sc)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[sc.Game()] = append(m.cards[sc.Game()], sc)
	return nil
}

// LoadAll returns a copy of t's scorecards.
func (m *MemoryStore) LoadAll(ctx context.Context, t game.Type) ([]Scorecard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Scorecard, len(m.cards[t]))
	copy(out, m.cards[t])
	return out, nil
}
