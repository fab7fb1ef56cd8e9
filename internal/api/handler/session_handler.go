package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mimisupply/demo-auth/internal/core/session"
)

// SessionHandler exposes the observable session state to clients that
// poll instead of holding a token.
type SessionHandler struct {
	state *session.State
}

func NewSessionHandler(state *session.State) *SessionHandler {
	return &SessionHandler{state: state}
}

// Get returns the current session snapshot.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	snap := h.state.Snapshot()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: snap.Authenticated,
		Role:          string(snap.Role),
		User:          snap.User,
	})
}
