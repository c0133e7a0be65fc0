package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: user_id and role must
// be non-empty (presence proves the middleware ran and the token carried a
// usable identity).
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	return domain.Principal{ID: id, Name: name, Role: role}, nil
}
