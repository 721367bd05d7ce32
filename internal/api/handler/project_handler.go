package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/api/metrics"
	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

// ProjectHandler serves project CRUD.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /v1/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Case-insensitive match over title"
// @Success      200  {object}  projectListEnvelope
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return c.JSON(http.StatusOK, projectListEnvelope{Projects: projects})
}

// Create handles POST /v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "New project"
// @Success      201   {object}  projectEnvelope
// @Failure      400   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createProjectRequest
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

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   timePtr(req.StartDate),
		EndDate:     timePtr(req.EndDate),
		Progress:    req.Progress,
		Status:      req.status(),
		ActorID:     ident.UserID,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "create").Inc()
	return c.JSON(http.StatusCreated, projectEnvelope{Project: project})
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  projectEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	project, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectEnvelope{Project: project})
}

// Update handles PATCH /v1/projects/:id. Date ordering is re-checked against
// the stored row when only one bound changes.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  projectEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateProjectRequest
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

	project, err := h.service.Update(c.Request().Context(), id, ports.UpdateProjectInput{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   optTime(req.StartDate),
		EndDate:     optTime(req.EndDate),
		Progress:    req.Progress,
		Status:      req.status(),
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "update").Inc()
	return c.JSON(http.StatusOK, projectEnvelope{Project: project})
}

// Delete handles DELETE /v1/projects/:id. Tasks and milestones of the
// project go with it.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  int  true  "Project id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("project", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
