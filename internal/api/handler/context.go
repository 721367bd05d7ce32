package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// authContext is the per-request identity assembled by the Auth middleware.
// It lives for the duration of one request and is never persisted.
type authContext struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// ctxIdentity extracts the claims injected by the Auth middleware. A missing
// role proves the middleware never ran for this route; fail closed.
func ctxIdentity(c echo.Context) (authContext, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return authContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	return authContext{UserID: userID, Email: email, IsAdmin: role == domain.RoleAdmin}, nil
}

// pathID parses the numeric :id path parameter. Non-integer and non-positive
// values are caller errors, not lookups that happen to find nothing.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// queryProjectID parses the required project_id query parameter used by the
// task list and report endpoints.
func queryProjectID(c echo.Context) (int64, error) {
	raw := c.QueryParam("project_id")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "project_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "project_id must be a positive integer")
	}
	return id, nil
}

// pathUUID parses the :id path parameter of uuid-keyed resources.
func pathUUID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
