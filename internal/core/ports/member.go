package ports

import (
	"context"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// MemberRepository covers the employee directory and project membership.
type MemberRepository interface {
	ListEmployees(ctx context.Context, search string) ([]domain.Employee, error)
	AddProjectMember(ctx context.Context, projectID, userID int64) (*domain.ProjectMember, error)
	ListProjectMembers(ctx context.Context, projectID int64) ([]domain.ProjectMember, error)
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error
}

type MemberService interface {
	ListEmployees(ctx context.Context, search string) ([]domain.Employee, error)
	Add(ctx context.Context, projectID, userID int64) (*domain.ProjectMember, error)
	ListForProject(ctx context.Context, projectID int64) ([]domain.ProjectMember, error)
	Remove(ctx context.Context, projectID, userID int64) error
}
