package ports

import (
	"context"

	"github.com/mimisupply/demo-auth/internal/core/domain"
)

// AuthService orchestrates demo login and is the sole mutator of the
// session state.
type AuthService interface {
	// Login validates credentials against the fixture store after a
	// simulated network round-trip. On success the session state is
	// replaced in one atomic step; on failure it is left untouched.
	Login(ctx context.Context, email, password string) (*domain.DemoUser, error)

	// QuickLogin logs in as the representative demo user for role,
	// using that user's stored credentials. Fails with
	// ErrRoleNotSupported when the role has no quick-login fixture.
	QuickLogin(ctx context.Context, role domain.Role) (*domain.DemoUser, error)

	// Logout resets the session to the logged-out state. Idempotent,
	// never fails.
	Logout()

	IsCustomer() bool
	IsPartner() bool
	IsDriver() bool

	// CurrentPartnerInfo returns the partner profile of the current
	// user, or nil when nobody is logged in, the current user is not a
	// partner, or the partner id does not resolve.
	CurrentPartnerInfo(ctx context.Context) *domain.Partner

	// CurrentDriverInfo returns the driver profile embedded on the
	// current user, or nil when not logged in as a driver.
	CurrentDriverInfo() *domain.DriverInfo
}
