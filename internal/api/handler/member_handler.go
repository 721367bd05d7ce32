package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/api/metrics"
	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

// MemberHandler serves the employee directory and project membership.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type memberRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type memberEnvelope struct {
	Member *domain.ProjectMember `json:"member"`
}

type projectMemberListEnvelope struct {
	Members []domain.ProjectMember `json:"members"`
}

type employeeListEnvelope struct {
	Members []domain.Employee `json:"members"`
}

// ListEmployees handles GET /v1/members.
//
// @Summary      List the employee directory
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Case-insensitive match over surname"
// @Success      200  {object}  employeeListEnvelope
// @Router       /v1/members [get]
func (h *MemberHandler) ListEmployees(c echo.Context) error {
	employees, err := h.service.ListEmployees(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return c.JSON(http.StatusOK, employeeListEnvelope{Members: employees})
}

// Add handles POST /v1/projects/:id/members.
//
// @Summary      Add a member to a project
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Project id"
// @Param        body  body      memberRequest  true  "Employee to add"
// @Success      201   {object}  memberEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id}/members [post]
func (h *MemberHandler) Add(c echo.Context) error {
	projectID, err := pathID(c)
	if err != nil {
		return err
	}
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Add(c.Request().Context(), projectID, req.UserID)
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("member", "create").Inc()
	return c.JSON(http.StatusCreated, memberEnvelope{Member: member})
}

// ListForProject handles GET /v1/projects/:id/members.
//
// @Summary      List members of a project
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  projectMemberListEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id}/members [get]
func (h *MemberHandler) ListForProject(c echo.Context) error {
	projectID, err := pathID(c)
	if err != nil {
		return err
	}
	members, err := h.service.ListForProject(c.Request().Context(), projectID)
	if err != nil {
		return err
	}
	if members == nil {
		members = []domain.ProjectMember{}
	}
	return c.JSON(http.StatusOK, projectMemberListEnvelope{Members: members})
}

// Remove handles POST /v1/projects/:id/members/remove. Removal rides on POST
// so the member id travels in the body like on Add.
//
// @Summary      Remove a member from a project
// @Tags         members
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int            true  "Project id"
// @Param        body  body  memberRequest  true  "Employee to remove"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id}/members/remove [post]
func (h *MemberHandler) Remove(c echo.Context) error {
	projectID, err := pathID(c)
	if err != nil {
		return err
	}
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Remove(c.Request().Context(), projectID, req.UserID); err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("member", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
