package handler

import "github.com/mimisupply/demo-auth/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type quickLoginRequest struct {
	Role string `json:"role" validate:"required,oneof=customer partner driver admin"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  *domain.DemoUser `json:"user"`
}

// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Role          string           `json:"role,omitempty"`
	User          *domain.DemoUser `json:"user,omitempty"`
}

type roleResponse struct {
	Role       string `json:"role"`
	QuickLogin bool   `json:"quick_login"`
}
