package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/api/metrics"
	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

// TaskHandler serves the kanban task endpoints.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /v1/tasks. Archived tasks stay hidden unless
// include_archived=true.
//
// @Summary      List tasks of a project
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        project_id        query  int     true   "Project id"
// @Param        q                 query  string  false  "Case-insensitive match over title and description"
// @Param        status            query  string  false  "Filter by status"  Enums(todo, in_progress, blocked, done)
// @Param        include_archived  query  bool    false  "Include archived tasks"
// @Success      200  {object}  taskListEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	projectID, err := queryProjectID(c)
	if err != nil {
		return err
	}
	filter := ports.ListTasksFilter{
		ProjectID:       projectID,
		Search:          c.QueryParam("q"),
		IncludeArchived: c.QueryParam("include_archived") == "true",
	}
	if s := c.QueryParam("status"); s != "" {
		switch domain.TaskStatus(s) {
		case domain.TaskTodo, domain.TaskInProgress, domain.TaskBlocked, domain.TaskDone:
			filter.Status = domain.TaskStatus(s)
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: todo in_progress blocked done")
		}
	}

	tasks, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, taskListEnvelope{Items: tasks})
}

// Create handles POST /v1/tasks. A milestone, when given, must belong to the
// task's project.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "New task"
// @Success      201   {object}  taskEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
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

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		ProjectID:   req.ProjectID,
		MilestoneID: req.MilestoneID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.status(),
		Priority:    req.priority(),
		AssigneeID:  req.AssigneeID,
		DueDate:     timePtr(req.DueDate),
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("task", "create").Inc()
	return c.JSON(http.StatusCreated, taskEnvelope{Task: task})
}

// Update handles PATCH /v1/tasks/:id. Absent fields keep their value,
// explicit nulls clear description, due_date, milestone_id and assignee_id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  taskEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateTaskRequest
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

	task, err := h.service.Update(c.Request().Context(), id, ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.status(),
		Priority:    req.priority(),
		AssigneeID:  req.AssigneeID,
		DueDate:     optTime(req.DueDate),
		MilestoneID: req.MilestoneID,
		OrderIndex:  req.OrderIndex,
		IsArchived:  req.IsArchived,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("task", "update").Inc()
	return c.JSON(http.StatusOK, taskEnvelope{Task: task})
}

// Delete handles DELETE /v1/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  int  true  "Task id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("task", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Reorder handles PATCH /v1/tasks/reorder. Only order_index, status when
// given, and updated_at change; nothing else on the row is touched.
//
// @Summary      Move a task on the board
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reorderTaskRequest  true  "Target position"
// @Success      200   {object}  taskEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/reorder [patch]
func (h *TaskHandler) Reorder(c echo.Context) error {
	var req reorderTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Reorder(c.Request().Context(), ports.ReorderTaskInput{
		ID:         req.ID,
		OrderIndex: req.OrderIndex,
		Status:     req.status(),
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("task", "reorder").Inc()
	return c.JSON(http.StatusOK, taskEnvelope{Task: task})
}
