package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mimisupply/demo-auth/internal/core/ports"
)

// ProfileHandler serves the role-specific profile of the current demo
// session. The routes are gated by the RBAC middleware, but the data
// always comes from the session state, not from the token.
type ProfileHandler struct {
	authService ports.AuthService
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// Partner returns the partner profile behind the current session.
//
// @Summary      Current partner profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Partner
// @Failure      404  {object}  errorResponse
// @Router       /v1/me/partner [get]
func (h *ProfileHandler) Partner(c echo.Context) error {
	partner := h.authService.CurrentPartnerInfo(c.Request().Context())
	if partner == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no partner profile for current session"})
	}
	return c.JSON(http.StatusOK, partner)
}

// Driver returns the driver profile embedded on the current session.
//
// @Summary      Current driver profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DriverInfo
// @Failure      404  {object}  errorResponse
// @Router       /v1/me/driver [get]
func (h *ProfileHandler) Driver(c echo.Context) error {
	info := h.authService.CurrentDriverInfo()
	if info == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no driver profile for current session"})
	}
	return c.JSON(http.StatusOK, info)
}
