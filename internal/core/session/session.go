// Package session holds the single source of truth for "who is logged
// in". The three observable fields (current user, authenticated flag,
// current role) always move together: no reader can ever observe a
// state where the flag and the user disagree.
package session

import (
	"sync"

	"github.com/mimisupply/demo-auth/internal/core/domain"
)

// Snapshot is a consistent copy of the session at one point in time.
// The invariant Authenticated == (User != nil) holds for every snapshot,
// and Role mirrors User.Role (empty string when logged out).
type Snapshot struct {
	User          *domain.DemoUser `json:"user,omitempty"`
	Authenticated bool             `json:"authenticated"`
	Role          domain.Role      `json:"role,omitempty"`
}

const watchBuffer = 1

// State is the process-wide session holder. All mutations happen under
// one mutex so the (user, authenticated, role) triple is replaced as a
// single atomic unit. Constructed in the logged-out state.
type State struct {
	mu       sync.Mutex
	current  Snapshot
	watchers []chan Snapshot
}

func New() *State {
	return &State{}
}

// Snapshot returns a consistent copy of the current session.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the session with a logged-in state for user. A second
// Set without an intervening Clear overwrites the previous identity.
func (s *State) Set(user *domain.DemoUser) {
	if user == nil {
		s.Clear()
		return
	}
	u := *user
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Snapshot{User: &u, Authenticated: true, Role: u.Role}
	s.notifyLocked()
}

// Clear resets the session to the logged-out state. Idempotent.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Snapshot{}
	s.notifyLocked()
}

// Watch registers a watcher that receives a Snapshot after every
// transition. Delivery is latest-wins: a watcher that falls behind
// skips intermediate states but always sees the most recent one.
func (s *State) Watch() <-chan Snapshot {
	ch := make(chan Snapshot, watchBuffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, ch)
	return ch
}

// notifyLocked fans the current snapshot out to all watchers without
// blocking. Callers must hold s.mu.
func (s *State) notifyLocked() {
	for _, ch := range s.watchers {
		select {
		case ch <- s.current:
		default:
			// Stale snapshot still queued: drop it, queue the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s.current:
			default:
			}
		}
	}
}
