package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type TaskService struct {
	repo       ports.TaskRepository
	milestones ports.MilestoneRepository
	logger     zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, milestones ports.MilestoneRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, milestones: milestones, logger: logger}
}

// checkMilestone rejects a milestone reference that points outside the task's
// project. The FK alone cannot express this.
func (s *TaskService) checkMilestone(ctx context.Context, milestoneID, projectID int64) error {
	m, err := s.milestones.FindByID(ctx, milestoneID)
	if err != nil {
		return err
	}
	if m.ProjectID != projectID {
		return domain.ErrMilestoneMismatch
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	if in.MilestoneID != nil {
		if err := s.checkMilestone(ctx, *in.MilestoneID, in.ProjectID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	t := &domain.Task{
		ProjectID:   in.ProjectID,
		MilestoneID: in.MilestoneID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		AssigneeID:  in.AssigneeID,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if in.OrderIndex != nil {
		t.OrderIndex = *in.OrderIndex
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("task_id", created.ID).Int64("project_id", created.ProjectID).Msg("task created")
	return created, nil
}

func (s *TaskService) List(ctx context.Context, f ports.ListTasksFilter) ([]domain.Task, error) {
	return s.repo.List(ctx, f)
}

func (s *TaskService) Update(ctx context.Context, id int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	if in.MilestoneID.Set && in.MilestoneID.Value != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.checkMilestone(ctx, *in.MilestoneID.Value, current.ProjectID); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description.Set {
		fields["description"] = in.Description.Value
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Priority != nil {
		fields["priority"] = *in.Priority
	}
	if in.AssigneeID.Set {
		fields["assignee_id"] = in.AssigneeID.Value
	}
	if in.DueDate.Set {
		fields["due_date"] = in.DueDate.Value
	}
	if in.MilestoneID.Set {
		fields["milestone_id"] = in.MilestoneID.Value
	}
	if in.OrderIndex != nil {
		fields["order_index"] = *in.OrderIndex
	}
	if in.IsArchived != nil {
		fields["is_archived"] = *in.IsArchived
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("task_id", id).Msg("task deleted")
	return nil
}

// Reorder moves a kanban card: only order_index, optionally status, and
// updated_at change.
func (s *TaskService) Reorder(ctx context.Context, in ports.ReorderTaskInput) (*domain.Task, error) {
	fields := map[string]any{
		"order_index": in.OrderIndex,
		"updated_at":  time.Now().UTC(),
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	return s.repo.Update(ctx, in.ID, fields)
}
