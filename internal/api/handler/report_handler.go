package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/api/metrics"
	"github.com/taskhive/backoffice/internal/core/ports"
)

// ReportHandler serves the read-only reporting endpoints. Every report is
// scoped to a single project.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type milestoneProgressEnvelope struct {
	Items []ports.MilestoneProgressRow `json:"items"`
}

type burndownEnvelope struct {
	Points []ports.BurndownPoint `json:"points"`
}

type statusSummaryEnvelope struct {
	Items []ports.StatusCountRow `json:"items"`
}

// MilestoneProgress handles GET /v1/reports/milestones/progress.
//
// @Summary      Task completion per milestone
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query  int  true  "Project id"
// @Success      200  {object}  milestoneProgressEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /v1/reports/milestones/progress [get]
func (h *ReportHandler) MilestoneProgress(c echo.Context) error {
	projectID, err := queryProjectID(c)
	if err != nil {
		return err
	}
	rows, err := h.service.MilestoneProgress(c.Request().Context(), projectID)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.MilestoneProgressRow{}
	}
	metrics.ReportQueriesTotal.WithLabelValues("milestone_progress").Inc()
	return c.JSON(http.StatusOK, milestoneProgressEnvelope{Items: rows})
}

// Burndown handles GET /v1/reports/projects/burndown: one point per day from
// the first task created to now, counting cumulative created vs done.
//
// @Summary      Project burndown series
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query  int  true  "Project id"
// @Success      200  {object}  burndownEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /v1/reports/projects/burndown [get]
func (h *ReportHandler) Burndown(c echo.Context) error {
	projectID, err := queryProjectID(c)
	if err != nil {
		return err
	}
	points, err := h.service.Burndown(c.Request().Context(), projectID)
	if err != nil {
		return err
	}
	if points == nil {
		points = []ports.BurndownPoint{}
	}
	metrics.ReportQueriesTotal.WithLabelValues("burndown").Inc()
	return c.JSON(http.StatusOK, burndownEnvelope{Points: points})
}

// StatusSummary handles GET /v1/reports/tasks/status-summary over
// non-archived tasks.
//
// @Summary      Task counts by status
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query  int  true  "Project id"
// @Success      200  {object}  statusSummaryEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /v1/reports/tasks/status-summary [get]
func (h *ReportHandler) StatusSummary(c echo.Context) error {
	projectID, err := queryProjectID(c)
	if err != nil {
		return err
	}
	rows, err := h.service.TaskStatusSummary(c.Request().Context(), projectID)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []ports.StatusCountRow{}
	}
	metrics.ReportQueriesTotal.WithLabelValues("status_summary").Inc()
	return c.JSON(http.StatusOK, statusSummaryEnvelope{Items: rows})
}
