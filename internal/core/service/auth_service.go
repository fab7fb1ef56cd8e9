package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mimisupply/demo-auth/internal/core/domain"
	"github.com/mimisupply/demo-auth/internal/core/ports"
	"github.com/mimisupply/demo-auth/internal/core/session"
)

const defaultLoginDelay = time.Second

// AuthService implements demo-mode login against the fixture store. It
// is the only component that writes the session state.
type AuthService struct {
	store    ports.FixtureStore
	state    *session.State
	throttle ports.LoginThrottle
	delay    time.Duration
	logger   zerolog.Logger
}

func NewAuthService(store ports.FixtureStore, state *session.State, throttle ports.LoginThrottle, delay time.Duration, logger zerolog.Logger) *AuthService {
	if delay < 0 {
		delay = defaultLoginDelay
	}
	if throttle == nil {
		throttle = NopThrottle{}
	}
	return &AuthService{store: store, state: state, throttle: throttle, delay: delay, logger: logger}
}

// Login validates credentials after a simulated network round-trip.
// The session transition happens only after the delay completes and
// the lookup succeeds, as one atomic write; a failed or cancelled
// login leaves the session exactly as it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.DemoUser, error) {
	allowed, err := s.throttle.Allow(ctx, email)
	if err != nil {
		// Demo mode fails open: a broken throttle backend must not
		// lock anyone out.
		s.logger.Warn().Err(err).Msg("login throttle unavailable")
	} else if !allowed {
		return nil, domain.ErrTooManyAttempts
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	user, err := s.store.FindUser(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if terr := s.throttle.RecordFailure(ctx, email); terr != nil {
				s.logger.Warn().Err(terr).Msg("failed to record login failure")
			}
			s.logger.Info().Str("email", email).Msg("login rejected")
		}
		return nil, err
	}

	if terr := s.throttle.Reset(ctx, email); terr != nil {
		s.logger.Warn().Err(terr).Msg("failed to reset login throttle")
	}

	s.state.Set(user)
	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("login succeeded")

	return user, nil
}

// QuickLogin resolves the representative fixture for role and delegates
// to Login with that user's stored credentials. Roles without a fixture
// fail before Login runs, so the session is never touched.
func (s *AuthService) QuickLogin(ctx context.Context, role domain.Role) (*domain.DemoUser, error) {
	fixture, err := s.store.FirstUserOfRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return s.Login(ctx, fixture.Email, fixture.Password)
}

// Logout unconditionally resets the session. Safe to call repeatedly
// and when nobody is logged in.
func (s *AuthService) Logout() {
	s.state.Clear()
	s.logger.Info().Msg("logged out")
}

func (s *AuthService) IsCustomer() bool { return s.currentRole() == domain.RoleCustomer }
func (s *AuthService) IsPartner() bool  { return s.currentRole() == domain.RolePartner }
func (s *AuthService) IsDriver() bool   { return s.currentRole() == domain.RoleDriver }

// CurrentPartnerInfo resolves the partner profile of the current user.
// Nil unless logged in as a partner whose partner id resolves in the
// directory.
func (s *AuthService) CurrentPartnerInfo(ctx context.Context) *domain.Partner {
	snap := s.state.Snapshot()
	if !snap.Authenticated || snap.Role != domain.RolePartner || snap.User.PartnerID == "" {
		return nil
	}
	partner, err := s.store.PartnerByID(ctx, snap.User.PartnerID)
	if err != nil {
		return nil
	}
	return partner
}

// CurrentDriverInfo returns the driver profile embedded on the current
// user, nil unless logged in as a driver.
func (s *AuthService) CurrentDriverInfo() *domain.DriverInfo {
	snap := s.state.Snapshot()
	if !snap.Authenticated || snap.Role != domain.RoleDriver {
		return nil
	}
	return snap.User.DriverInfo
}

func (s *AuthService) currentRole() domain.Role {
	return s.state.Snapshot().Role
}

// simulateLatency stands in for the network round-trip a real backend
// would cost. Cancellation wins over the timer, so an interrupted login
// never reaches the credential check.
func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopThrottle disables login throttling. Used when no Redis backend is
// configured and in tests.
type NopThrottle struct{}

func (NopThrottle) Allow(context.Context, string) (bool, error) { return true, nil }
func (NopThrottle) RecordFailure(context.Context, string) error { return nil }
func (NopThrottle) Reset(context.Context, string) error         { return nil }
