package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mimisupply/demo-auth/internal/api/metrics"
	"github.com/mimisupply/demo-auth/internal/core/domain"
	"github.com/mimisupply/demo-auth/internal/core/ports"
)

// roleLister reports which roles have a quick-login fixture.
type roleLister interface {
	QuickLoginRoles() []domain.Role
}

type AuthHandler struct {
	authService ports.AuthService
	roles       roleLister
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, roles roleLister, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, roles: roles, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login authenticates a demo user by email and password.
//
// @Summary      Login with demo credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Demo credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.loginError(c, err, start)
	}
	metrics.LoginsTotal.WithLabelValues(string(user.Role), "success").Inc()
	metrics.LoginDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	token, err := h.signSessionToken(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// QuickLogin logs in as the representative demo user for a role.
//
// @Summary      Quick login by role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      quickLoginRequest  true  "Role to impersonate"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/quick-login [post]
func (h *AuthHandler) QuickLogin(c echo.Context) error {
	var req quickLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	role := domain.Role(req.Role)
	user, err := h.authService.QuickLogin(c.Request().Context(), role)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotSupported) {
			metrics.QuickLoginsTotal.WithLabelValues(req.Role, "unsupported").Inc()
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		}
		metrics.QuickLoginsTotal.WithLabelValues(req.Role, "error").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	metrics.QuickLoginsTotal.WithLabelValues(req.Role, "success").Inc()

	token, err := h.signSessionToken(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout resets the demo session. Always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "session reset"
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authService.Logout()
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Roles lists every role and whether it supports quick login.
//
// @Summary      List roles
// @Tags         auth
// @Produce      json
// @Success      200  {array}  roleResponse
// @Router       /v1/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	supported := make(map[domain.Role]bool)
	for _, r := range h.roles.QuickLoginRoles() {
		supported[r] = true
	}

	out := make([]roleResponse, 0, len(domain.AllRoles()))
	for _, r := range domain.AllRoles() {
		out = append(out, roleResponse{Role: string(r), QuickLogin: supported[r]})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) loginError(c echo.Context, err error, start time.Time) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("", "invalid").Inc()
		metrics.LoginDuration.WithLabelValues("invalid").Observe(time.Since(start).Seconds())
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrTooManyAttempts):
		metrics.LoginsTotal.WithLabelValues("", "throttled").Inc()
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		metrics.LoginsTotal.WithLabelValues("", "cancelled").Inc()
		return c.JSON(http.StatusRequestTimeout, errorResponse{Error: "request cancelled"})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// signSessionToken mints the demo session token returned on login. The
// claims mirror what the Auth middleware reads back.
func (h *AuthHandler) signSessionToken(user *domain.DemoUser) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
