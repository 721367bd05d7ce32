package ports

import (
	"context"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type CreateCustomerInput struct {
	Title       string
	Description *string
	ActorID     string
}

type UpdateCustomerInput struct {
	Title       *string
	Description domain.Optional[string]
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerService interface {
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, in UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
