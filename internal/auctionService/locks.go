package auction

import "sync"

// RoundLocks hands out one mutex per key. The coordinator and the state
// machine share an instance: bids and resolutions lock the round id, while
// opening a round and ending the game lock the session id, so session-wide
// checks cannot interleave either. Lock ordering is session before round.
// Entries are never pruned: a game produces a few dozen rounds at most, so
// the map stays small for the life of the process.
type RoundLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRoundLocks creates an empty lock registry
func NewRoundLocks() *RoundLocks {
	return &RoundLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the exclusive scope for a round and returns its release func
func (r *RoundLocks) Lock(roundID string) func() {
	r.mu.Lock()
	m, ok := r.locks[roundID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[roundID] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}
