package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleNotSupported   = errors.New("no demo account available for this role")
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	// ErrNetwork is reserved for a future real backend; the demo data
	// source never raises it.
	ErrNetwork = errors.New("network error")
)
