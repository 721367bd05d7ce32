package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/api/metrics"
	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

// MilestoneHandler serves milestone CRUD.
type MilestoneHandler struct {
	service ports.MilestoneService
}

func NewMilestoneHandler(service ports.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{service: service}
}

// List handles GET /v1/milestones?project_id=.
//
// @Summary      List milestones of a project
// @Tags         milestones
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query  int  true  "Project id"
// @Success      200  {object}  milestoneListEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /v1/milestones [get]
func (h *MilestoneHandler) List(c echo.Context) error {
	projectID, err := queryProjectID(c)
	if err != nil {
		return err
	}
	milestones, err := h.service.ListByProject(c.Request().Context(), projectID)
	if err != nil {
		return err
	}
	if milestones == nil {
		milestones = []domain.Milestone{}
	}
	return c.JSON(http.StatusOK, milestoneListEnvelope{Milestones: milestones})
}

// Create handles POST /v1/milestones.
//
// @Summary      Create a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMilestoneRequest  true  "New milestone"
// @Success      201   {object}  milestoneEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/milestones [post]
func (h *MilestoneHandler) Create(c echo.Context) error {
	var req createMilestoneRequest
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

	milestone, err := h.service.Create(c.Request().Context(), ports.CreateMilestoneInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   timePtr(req.StartDate),
		DueDate:     timePtr(req.DueDate),
		Status:      req.status(),
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("milestone", "create").Inc()
	return c.JSON(http.StatusCreated, milestoneEnvelope{Milestone: milestone})
}

// Update handles PATCH /v1/milestones/:id.
//
// @Summary      Update a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Milestone id"
// @Param        body  body      updateMilestoneRequest  true  "Fields to change"
// @Success      200   {object}  milestoneEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/milestones/{id} [patch]
func (h *MilestoneHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateMilestoneRequest
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

	milestone, err := h.service.Update(c.Request().Context(), id, ports.UpdateMilestoneInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   optTime(req.StartDate),
		DueDate:     optTime(req.DueDate),
		Status:      req.status(),
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("milestone", "update").Inc()
	return c.JSON(http.StatusOK, milestoneEnvelope{Milestone: milestone})
}

// Delete handles DELETE /v1/milestones/:id. Tasks that pointed at it keep
// existing with milestone_id cleared.
//
// @Summary      Delete a milestone
// @Tags         milestones
// @Security     BearerAuth
// @Param        id  path  int  true  "Milestone id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/milestones/{id} [delete]
func (h *MilestoneHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("milestone", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
