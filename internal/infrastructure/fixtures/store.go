// Package fixtures is the demo-mode data source: a deterministic,
// read-only catalogue of demo identities and partner profiles held in
// memory. It fills the repository slot a real backend would occupy.
package fixtures

import (
	"context"

	"github.com/mimisupply/demo-auth/internal/core/domain"
)

// Store implements ports.FixtureStore over the static demo catalogue.
// All lookups are side-effect free; copies are returned so callers can
// never mutate the fixtures.
type Store struct {
	users    []domain.DemoUser
	partners map[string]domain.Partner
}

// NewStore seeds the catalogue with the built-in demo data set.
func NewStore() *Store {
	return &Store{users: demoUsers(), partners: demoPartners()}
}

// FindUser matches email and password exactly. Matching is
// case-sensitive and performs no trimming; a near-miss is
// indistinguishable from an unknown account.
func (s *Store) FindUser(_ context.Context, email, password string) (*domain.DemoUser, error) {
	for i := range s.users {
		u := s.users[i]
		if u.Email == email && u.Password == password {
			return cloneUser(&u), nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// FirstUserOfRole returns the first seeded user carrying role. The
// catalogue order is fixed, so the representative per role never
// changes across runs. Roles without a fixture (admin) are not
// quick-login capable.
func (s *Store) FirstUserOfRole(_ context.Context, role domain.Role) (*domain.DemoUser, error) {
	for i := range s.users {
		if s.users[i].Role == role {
			return cloneUser(&s.users[i]), nil
		}
	}
	return nil, domain.ErrRoleNotSupported
}

// PartnerByID resolves a partner profile from the directory.
func (s *Store) PartnerByID(_ context.Context, id string) (*domain.Partner, error) {
	p, ok := s.partners[id]
	if !ok {
		return nil, domain.ErrPartnerNotFound
	}
	clone := p
	return &clone, nil
}

// QuickLoginRoles reports which roles have a quick-login fixture, in
// catalogue role order.
func (s *Store) QuickLoginRoles() []domain.Role {
	supported := make([]domain.Role, 0, len(domain.AllRoles()))
	for _, role := range domain.AllRoles() {
		for i := range s.users {
			if s.users[i].Role == role {
				supported = append(supported, role)
				break
			}
		}
	}
	return supported
}

func cloneUser(u *domain.DemoUser) *domain.DemoUser {
	clone := *u
	if u.DriverInfo != nil {
		info := *u.DriverInfo
		clone.DriverInfo = &info
	}
	return &clone
}
