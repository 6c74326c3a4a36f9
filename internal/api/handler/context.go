package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/api/middleware"
	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// ctxUser extracts the user injected by the Auth middleware and performs a
// fast-fail check before any service call: presence proves the middleware
// ran on this route.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// ctxCaller is ctxUser reduced to the identity/role pair service operations
// evaluate the ownership policy against.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	user, err := ctxUser(c)
	if err != nil {
		return ports.Caller{}, err
	}
	return ports.Caller{UserID: user.ID, Role: user.Role}, nil
}
