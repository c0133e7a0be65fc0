package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound, "project not found"},
		{"article not found", domain.ErrArticleNotFound, http.StatusNotFound, "article not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationKeepsMessage(t *testing.T) {
	err := fmt.Errorf("%w: title is required", domain.ErrValidation)
	code, msg := renderError(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != err.Error() {
		t.Fatalf("expected %q, got %q", err.Error(), msg)
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("toggle like: %w", domain.ErrProjectNotFound)
	code, _ := renderError(t, err)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "missing authentication claims" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: socket closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}
