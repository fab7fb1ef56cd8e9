package ports

import "context"

// LoginThrottle limits repeated failed logins per email. Implementations
// may be backed by Redis or be a no-op when throttling is disabled.
type LoginThrottle interface {
	// Allow reports whether a login attempt for email may proceed.
	Allow(ctx context.Context, email string) (bool, error)

	// RecordFailure counts one failed attempt for email.
	RecordFailure(ctx context.Context, email string) error

	// Reset clears the failure count for email after a successful login.
	Reset(ctx context.Context, email string) error
}
