package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mimisupply/demo-auth/internal/core/domain"
	"github.com/mimisupply/demo-auth/internal/core/session"
)

func TestProfileHandler_Partner_Resolves(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{partner: &domain.Partner{ID: "p1", Name: "Mimi Market"}}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/v1/me/partner", "")
	if err := h.Partner(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var p domain.Partner
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if p.ID != "p1" {
		t.Fatalf("unexpected partner: %+v", p)
	}
}

func TestProfileHandler_Partner_NoProfile(t *testing.T) {
	e := echo.New()
	h := NewProfileHandler(&stubAuthService{})

	c, rec := newTestContext(e, http.MethodGet, "/v1/me/partner", "")
	_ = h.Partner(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProfileHandler_Driver_Resolves(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{driver: &domain.DriverInfo{VehicleType: "e-bike"}}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/v1/me/driver", "")
	if err := h.Driver(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Driver_NoProfile(t *testing.T) {
	e := echo.New()
	h := NewProfileHandler(&stubAuthService{})

	c, rec := newTestContext(e, http.MethodGet, "/v1/me/driver", "")
	_ = h.Driver(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSessionHandler_Get(t *testing.T) {
	e := echo.New()
	state := session.New()
	h := NewSessionHandler(state)

	c, rec := newTestContext(e, http.MethodGet, "/v1/session", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Authenticated || resp.User != nil || resp.Role != "" {
		t.Fatalf("expected logged-out session, got %+v", resp)
	}

	state.Set(&domain.DemoUser{Email: "driver@mimisupply.com", Role: domain.RoleDriver})

	c, rec = newTestContext(e, http.MethodGet, "/v1/session", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Authenticated || resp.Role != "driver" || resp.User == nil {
		t.Fatalf("expected driver session, got %+v", resp)
	}
}
