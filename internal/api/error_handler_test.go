package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mahndi/payment-api/internal/core/domain"
)

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
		{domain.ErrAccountExists, http.StatusBadRequest, "User already exists"},
		{domain.ErrAccountNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrIncorrectPassword, http.StatusUnauthorized, "Incorrect password"},
		{domain.ErrOrderNotFound, http.StatusNotFound, "Request not found"},
		{errors.New("mongo: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		code, msg := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Errorf("resolveError(%v) = (%d, %q), want (%d, %q)", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), zerolog.Nop(), c)
	if code != http.StatusMethodNotAllowed || msg != "Method Not Allowed" {
		t.Fatalf("unexpected mapping: (%d, %q)", code, msg)
	}
}
