package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if !domain.DatesOrdered(in.StartDate, in.EndDate) {
		return nil, domain.ErrDateRange
	}

	now := time.Now().UTC()
	p := &domain.Project{
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
	if p.Status == "" {
		p.Status = domain.ProjectPlanned
	}
	if in.ActorID != "" {
		p.CreatedBy = &in.ActorID
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("project_id", created.ID).Str("status", string(created.Status)).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, search string) ([]domain.Project, error) {
	return s.repo.List(ctx, search)
}

func (s *ProjectService) Update(ctx context.Context, id int64, in ports.UpdateProjectInput) (*domain.Project, error) {
	// When only one date bound arrives the ordering check needs the stored
	// counterpart.
	if in.StartDate.Set || in.EndDate.Set {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		start, end := current.StartDate, current.EndDate
		if in.StartDate.Set {
			start = in.StartDate.Value
		}
		if in.EndDate.Set {
			end = in.EndDate.Value
		}
		if !domain.DatesOrdered(start, end) {
			return nil, domain.ErrDateRange
		}
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description.Set {
		fields["description"] = in.Description.Value
	}
	if in.CustomerID.Set {
		fields["customer_id"] = in.CustomerID.Value
	}
	if in.StartDate.Set {
		fields["start_date"] = in.StartDate.Value
	}
	if in.EndDate.Set {
		fields["end_date"] = in.EndDate.Value
	}
	if in.Progress != nil {
		fields["progress"] = *in.Progress
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}
