package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// errorResponse is the envelope every API error is rendered in.
type errorResponse struct {
	Error string `json:"error"`
}

// domainStatus maps each sentinel error to its HTTP code and the message the
// client sees. Messages are fixed per error so responses stay uniform no
// matter which code path produced the failure.
var domainStatus = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrUserExists, http.StatusBadRequest, "email already registered"},
	{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "not authenticated"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
}

// NewHTTPErrorHandler returns the central echo error handler. Domain errors
// map to deterministic status codes, echo's own errors pass through, and
// anything unexpected is logged in full but answered with an opaque 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		for _, m := range domainStatus {
			if errors.Is(err, m.err) {
				_ = c.JSON(m.code, errorResponse{Error: m.msg})
				return
			}
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
