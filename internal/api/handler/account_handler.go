package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/api/metrics"
	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

// AccountHandler serves the back-office account CRUD. Accounts pair an auth
// user with its directory profile; the two are created and removed together.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /v1/accounts.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Case-insensitive match over email, username and full name"
// @Success      200  {object}  accountListEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []domain.Profile{}
	}
	return c.JSON(http.StatusOK, accountListEnvelope{Accounts: accounts})
}

// Create handles POST /v1/accounts. The new account has no password; the
// response carries a one-time recovery link the admin hands to the user.
//
// @Summary      Create an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "New account"
// @Success      201   {object}  createAccountEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateAccountInput{
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("account", "create").Inc()
	return c.JSON(http.StatusCreated, createAccountEnvelope{
		Account:      result.Profile,
		RecoveryLink: result.RecoveryLink,
	})
}

// Get handles GET /v1/accounts/:id.
//
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id (uuid)"
// @Success      200  {object}  accountEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /v1/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	profile, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountEnvelope{Account: profile})
}

// Update handles PATCH /v1/accounts/:id. Absent fields keep their value,
// explicit nulls clear them; role can only be replaced.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id (uuid)"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  accountEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/accounts/{id} [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Update(c.Request().Context(), id, ports.UpdateAccountInput{
		Role:     req.Role,
		FullName: req.FullName,
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("account", "update").Inc()
	return c.JSON(http.StatusOK, accountEnvelope{Account: profile})
}

// Delete handles DELETE /v1/accounts/:id. Removes the auth user and the
// profile in one transaction.
//
// @Summary      Delete an account
// @Tags         accounts
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id (uuid)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("account", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
