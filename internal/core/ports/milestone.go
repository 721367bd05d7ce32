package ports

import (
	"context"
	"time"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type CreateMilestoneInput struct {
	ProjectID   int64
	Title       string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      domain.TaskStatus
}

type UpdateMilestoneInput struct {
	Title       *string
	Description domain.Optional[string]
	StartDate   domain.Optional[time.Time]
	DueDate     domain.Optional[time.Time]
	Status      *domain.TaskStatus
}

type MilestoneRepository interface {
	Create(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error)
	FindByID(ctx context.Context, id int64) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Milestone, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Milestone, error)
	Delete(ctx context.Context, id int64) error
}

type MilestoneService interface {
	Create(ctx context.Context, in CreateMilestoneInput) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Milestone, error)
	Update(ctx context.Context, id int64, in UpdateMilestoneInput) (*domain.Milestone, error)
	Delete(ctx context.Context, id int64) error
}
