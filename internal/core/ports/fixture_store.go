package ports

import (
	"context"

	"github.com/mimisupply/demo-auth/internal/core/domain"
)

// FixtureStore provides the static demo identities and the partner
// directory. Implementations are read-only; the only failure mode is
// "not found".
type FixtureStore interface {
	// FindUser matches email and password exactly (case-sensitive, no
	// trimming) against every demo user. Returns ErrInvalidCredentials
	// when no fixture matches both fields.
	FindUser(ctx context.Context, email, password string) (*domain.DemoUser, error)

	// FirstUserOfRole returns the fixed representative demo user for a
	// role, or ErrRoleNotSupported when the role has no quick-login
	// fixture.
	FirstUserOfRole(ctx context.Context, role domain.Role) (*domain.DemoUser, error)

	// PartnerByID resolves a partner profile from the partner directory.
	PartnerByID(ctx context.Context, id string) (*domain.Partner, error)
}
