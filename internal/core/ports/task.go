package ports

import (
	"context"
	"time"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// ListTasksFilter carries the query parameters of the task list endpoint.
// Archived tasks are excluded unless IncludeArchived is set.
type ListTasksFilter struct {
	ProjectID       int64
	Search          string // partial match on title or description
	Status          domain.TaskStatus
	IncludeArchived bool
}

type CreateTaskInput struct {
	ProjectID   int64
	MilestoneID *int64
	Title       string
	Description *string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssigneeID  *string
	DueDate     *time.Time
	OrderIndex  *int
}

type UpdateTaskInput struct {
	Title       *string
	Description domain.Optional[string]
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssigneeID  domain.Optional[string]
	DueDate     domain.Optional[time.Time]
	MilestoneID domain.Optional[int64]
	OrderIndex  *int
	IsArchived  *bool
}

// ReorderTaskInput moves a card on the kanban board: only order_index and,
// when given, status are touched.
type ReorderTaskInput struct {
	ID         int64
	OrderIndex int
	Status     *domain.TaskStatus
}

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, f ListTasksFilter) ([]domain.Task, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, f ListTasksFilter) ([]domain.Task, error)
	Update(ctx context.Context, id int64, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, in ReorderTaskInput) (*domain.Task, error)
}
