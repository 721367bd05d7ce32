package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	now := time.Now().UTC()
	c := &domain.Customer{
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ActorID != "" {
		c.CreatedBy = &in.ActorID
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("customer_id", created.ID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.repo.List(ctx, search)
}

func (s *CustomerService) Update(ctx context.Context, id int64, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description.Set {
		fields["description"] = in.Description.Value
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}
