package session

import (
	"sync"
	"testing"

	"github.com/mimisupply/demo-auth/internal/core/domain"
)

func demoUser(email string, role domain.Role) *domain.DemoUser {
	return &domain.DemoUser{Email: email, Password: "pw", Role: role}
}

func TestState_InitialLoggedOut(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	if snap.Authenticated || snap.User != nil || snap.Role != "" {
		t.Fatalf("expected logged-out initial state, got %+v", snap)
	}
}

func TestState_SetEstablishesInvariant(t *testing.T) {
	s := New()
	s.Set(demoUser("ana@mimisupply.com", domain.RoleCustomer))

	snap := s.Snapshot()
	if !snap.Authenticated {
		t.Fatalf("expected authenticated")
	}
	if snap.User == nil || snap.User.Email != "ana@mimisupply.com" {
		t.Fatalf("unexpected user: %+v", snap.User)
	}
	if snap.Role != domain.RoleCustomer {
		t.Fatalf("role %q does not mirror user role", snap.Role)
	}
}

func TestState_SetOverwritesPreviousUser(t *testing.T) {
	s := New()
	s.Set(demoUser("ana@mimisupply.com", domain.RoleCustomer))
	s.Set(demoUser("driver@mimisupply.com", domain.RoleDriver))

	snap := s.Snapshot()
	if snap.User.Email != "driver@mimisupply.com" || snap.Role != domain.RoleDriver {
		t.Fatalf("expected second login to overwrite, got %+v", snap)
	}
}

func TestState_ClearResetsExactly(t *testing.T) {
	s := New()
	s.Set(demoUser("ana@mimisupply.com", domain.RoleCustomer))
	s.Clear()

	snap := s.Snapshot()
	if snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot after clear, got %+v", snap)
	}

	// Idempotent: a second clear changes nothing.
	s.Clear()
	if s.Snapshot() != (Snapshot{}) {
		t.Fatalf("second clear should be a no-op")
	}
}

func TestState_SnapshotIsDetached(t *testing.T) {
	s := New()
	u := demoUser("ana@mimisupply.com", domain.RoleCustomer)
	s.Set(u)

	u.Email = "mutated@mimisupply.com"
	if s.Snapshot().User.Email != "ana@mimisupply.com" {
		t.Fatalf("session must copy the user, not alias it")
	}
}

func TestState_WatchReceivesTransitions(t *testing.T) {
	s := New()
	ch := s.Watch()

	s.Set(demoUser("ana@mimisupply.com", domain.RoleCustomer))
	snap := <-ch
	if !snap.Authenticated || snap.Role != domain.RoleCustomer {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	s.Clear()
	snap = <-ch
	if snap.Authenticated {
		t.Fatalf("expected logged-out snapshot after clear")
	}
}

func TestState_WatchLatestWins(t *testing.T) {
	s := New()
	ch := s.Watch()

	// Two transitions without the watcher draining: only the latest
	// must be pending.
	s.Set(demoUser("ana@mimisupply.com", domain.RoleCustomer))
	s.Set(demoUser("driver@mimisupply.com", domain.RoleDriver))

	snap := <-ch
	if snap.User == nil || snap.User.Email != "driver@mimisupply.com" {
		t.Fatalf("expected latest snapshot, got %+v", snap)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %+v", extra)
	default:
	}
}

func TestState_ConcurrentWritesNeverTear(t *testing.T) {
	s := New()
	users := []*domain.DemoUser{
		demoUser("ana@mimisupply.com", domain.RoleCustomer),
		demoUser("partner@mimisupply.com", domain.RolePartner),
		demoUser("driver@mimisupply.com", domain.RoleDriver),
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				s.Clear()
				return
			}
			s.Set(users[i%len(users)])
		}(i)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()

	for {
		snap := s.Snapshot()
		if snap.Authenticated != (snap.User != nil) {
			t.Fatalf("torn snapshot: %+v", snap)
		}
		if snap.User != nil && snap.Role != snap.User.Role {
			t.Fatalf("role does not mirror user: %+v", snap)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}
