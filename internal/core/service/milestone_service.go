package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type MilestoneService struct {
	repo   ports.MilestoneRepository
	logger zerolog.Logger
}

func NewMilestoneService(repo ports.MilestoneRepository, logger zerolog.Logger) *MilestoneService {
	return &MilestoneService{repo: repo, logger: logger}
}

func (s *MilestoneService) Create(ctx context.Context, in ports.CreateMilestoneInput) (*domain.Milestone, error) {
	now := time.Now().UTC()
	m := &domain.Milestone{
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if m.Status == "" {
		m.Status = domain.TaskTodo
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("milestone_id", created.ID).Int64("project_id", created.ProjectID).Msg("milestone created")
	return created, nil
}

func (s *MilestoneService) ListByProject(ctx context.Context, projectID int64) ([]domain.Milestone, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *MilestoneService) Update(ctx context.Context, id int64, in ports.UpdateMilestoneInput) (*domain.Milestone, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description.Set {
		fields["description"] = in.Description.Value
	}
	if in.StartDate.Set {
		fields["start_date"] = in.StartDate.Value
	}
	if in.DueDate.Set {
		fields["due_date"] = in.DueDate.Value
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *MilestoneService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("milestone_id", id).Msg("milestone deleted")
	return nil
}
