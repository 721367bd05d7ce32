package ports

import (
	"context"
	"time"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type CreateProjectInput struct {
	CustomerID  *int64
	Title       string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    *int
	Status      domain.ProjectStatus
	ActorID     string
}

// UpdateProjectInput is a partial patch over a project. Date ordering is
// re-checked against the stored row when only one bound arrives.
type UpdateProjectInput struct {
	CustomerID  domain.Optional[int64]
	Title       *string
	Description domain.Optional[string]
	StartDate   domain.Optional[time.Time]
	EndDate     domain.Optional[time.Time]
	Progress    *int
	Status      *domain.ProjectStatus
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, search string) ([]domain.Project, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, search string) ([]domain.Project, error)
	Update(ctx context.Context, id int64, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
