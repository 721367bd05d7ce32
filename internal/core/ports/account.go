package ports

import (
	"context"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// CreateAccountInput carries the admin-supplied fields for a new account.
// The account has no password until the recovery link is used.
type CreateAccountInput struct {
	Email    string
	Role     string
	FullName *string
	Username *string
}

// UpdateAccountInput is a partial patch; absent fields keep their value,
// explicit nulls clear it. Role can never be cleared, only replaced.
type UpdateAccountInput struct {
	Role     *string
	FullName domain.Optional[string]
	Username domain.Optional[string]
}

// CreateAccountResult pairs the stored profile with the one-time recovery
// link shown in the back office.
type CreateAccountResult struct {
	Profile      *domain.Profile
	RecoveryLink string
}

// AccountRepository persists auth users and their profiles. Create and
// Delete span both tables inside a single transaction.
type AccountRepository interface {
	Create(ctx context.Context, user *domain.AuthUser, profile *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, search string) ([]domain.Profile, error)
	// Update patches the profile row with fields and, when role is non-nil,
	// mirrors the role claim onto the auth user in the same transaction.
	Update(ctx context.Context, id string, fields map[string]any, role *string) (*domain.Profile, error)
	Delete(ctx context.Context, id string) error
}

type AccountService interface {
	Create(ctx context.Context, in CreateAccountInput) (*CreateAccountResult, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, search string) ([]domain.Profile, error)
	Update(ctx context.Context, id string, in UpdateAccountInput) (*domain.Profile, error)
	Delete(ctx context.Context, id string) error
}
