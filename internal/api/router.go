package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mimisupply/demo-auth/internal/api/handler"
	"github.com/mimisupply/demo-auth/internal/api/middleware"
	"github.com/mimisupply/demo-auth/internal/core/domain"
	"github.com/mimisupply/demo-auth/internal/core/ports"
	"github.com/mimisupply/demo-auth/internal/core/session"
)

// Dependencies carries everything the router wires into handlers. The
// composition root owns construction and lifecycle of all of it.
type Dependencies struct {
	AuthService ports.AuthService
	Session     *session.State
	Roles       interface{ QuickLoginRoles() []domain.Role }
	Redis       *redis.Client // nil when throttling is disabled
	JWTSecret   string
	TokenTTL    time.Duration
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mimisupply"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Roles, deps.JWTSecret, deps.TokenTTL)
	sessionHandler := handler.NewSessionHandler(deps.Session)
	profileHandler := handler.NewProfileHandler(deps.AuthService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/quick-login", authHandler.QuickLogin)
	e.POST("/v1/auth/logout", authHandler.Logout)
	e.GET("/v1/roles", authHandler.Roles)
	e.GET("/v1/session", sessionHandler.Get)

	// --- Role-scoped profile routes ---
	e.GET("/v1/me/partner", profileHandler.Partner, authMiddleware, middleware.RBAC(domain.RolePartner))
	e.GET("/v1/me/driver", profileHandler.Driver, authMiddleware, middleware.RBAC(domain.RoleDriver))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
