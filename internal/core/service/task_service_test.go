package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type stubTaskRepo struct {
	tasks      map[int64]*domain.Task
	nextID     int64
	lastFields map[string]any
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	clone := *t
	clone.ID = r.nextID
	r.nextID++
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) List(_ context.Context, f ports.ListTasksFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.ProjectID != f.ProjectID {
			continue
		}
		if t.IsArchived && !f.IncludeArchived {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id int64, fields map[string]any) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	r.lastFields = fields
	if v, ok := fields["order_index"]; ok {
		t.OrderIndex = v.(int)
	}
	if v, ok := fields["status"]; ok {
		t.Status = v.(domain.TaskStatus)
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

type stubMilestoneRepo struct {
	milestones map[int64]*domain.Milestone
}

func newStubMilestoneRepo() *stubMilestoneRepo {
	return &stubMilestoneRepo{milestones: make(map[int64]*domain.Milestone)}
}

func (r *stubMilestoneRepo) Create(_ context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	r.milestones[m.ID] = m
	clone := *m
	return &clone, nil
}

func (r *stubMilestoneRepo) FindByID(_ context.Context, id int64) (*domain.Milestone, error) {
	m, ok := r.milestones[id]
	if !ok {
		return nil, domain.ErrMilestoneNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMilestoneRepo) ListByProject(_ context.Context, projectID int64) ([]domain.Milestone, error) {
	var out []domain.Milestone
	for _, m := range r.milestones {
		if m.ProjectID == projectID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMilestoneRepo) Update(_ context.Context, id int64, _ map[string]any) (*domain.Milestone, error) {
	m, ok := r.milestones[id]
	if !ok {
		return nil, domain.ErrMilestoneNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMilestoneRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.milestones[id]; !ok {
		return domain.ErrMilestoneNotFound
	}
	delete(r.milestones, id)
	return nil
}

func int64p(v int64) *int64 { return &v }

func TestTaskService_Create_Defaults(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, newStubMilestoneRepo(), zerolog.Nop())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{
		ProjectID: 1,
		Title:     "write docs",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != domain.TaskTodo {
		t.Fatalf("expected default status todo, got %s", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", task.Priority)
	}
	if task.OrderIndex != 0 {
		t.Fatalf("expected default order_index 0, got %d", task.OrderIndex)
	}
}

func TestTaskService_Create_MilestoneOtherProject(t *testing.T) {
	milestones := newStubMilestoneRepo()
	milestones.milestones[10] = &domain.Milestone{ID: 10, ProjectID: 2}
	svc := NewTaskService(newStubTaskRepo(), milestones, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateTaskInput{
		ProjectID:   1,
		MilestoneID: int64p(10),
		Title:       "misfiled",
	})
	if !errors.Is(err, domain.ErrMilestoneMismatch) {
		t.Fatalf("expected ErrMilestoneMismatch, got %v", err)
	}
}

func TestTaskService_Create_MilestoneSameProject(t *testing.T) {
	milestones := newStubMilestoneRepo()
	milestones.milestones[10] = &domain.Milestone{ID: 10, ProjectID: 1}
	svc := NewTaskService(newStubTaskRepo(), milestones, zerolog.Nop())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{
		ProjectID:   1,
		MilestoneID: int64p(10),
		Title:       "filed",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.MilestoneID == nil || *task.MilestoneID != 10 {
		t.Fatalf("milestone not stored: %v", task.MilestoneID)
	}
}

func TestTaskService_Update_MilestoneMismatch(t *testing.T) {
	repo := newStubTaskRepo()
	repo.tasks[5] = &domain.Task{ID: 5, ProjectID: 1, Title: "existing"}
	milestones := newStubMilestoneRepo()
	milestones.milestones[10] = &domain.Milestone{ID: 10, ProjectID: 2}
	svc := NewTaskService(repo, milestones, zerolog.Nop())

	_, err := svc.Update(context.Background(), 5, ports.UpdateTaskInput{
		MilestoneID: domain.Some[int64](10),
	})
	if !errors.Is(err, domain.ErrMilestoneMismatch) {
		t.Fatalf("expected ErrMilestoneMismatch, got %v", err)
	}
}

func TestTaskService_Update_ClearMilestone(t *testing.T) {
	repo := newStubTaskRepo()
	repo.tasks[5] = &domain.Task{ID: 5, ProjectID: 1, MilestoneID: int64p(10)}
	svc := NewTaskService(repo, newStubMilestoneRepo(), zerolog.Nop())

	// Clearing needs no cross-project lookup; the milestone may already be
	// gone.
	if _, err := svc.Update(context.Background(), 5, ports.UpdateTaskInput{
		MilestoneID: domain.Null[int64](),
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, ok := repo.lastFields["milestone_id"]; !ok {
		t.Fatalf("milestone_id not included in update")
	}
	if repo.lastFields["milestone_id"] != (*int64)(nil) {
		t.Fatalf("milestone_id not cleared: %v", repo.lastFields["milestone_id"])
	}
}

func TestTaskService_Reorder_TouchesOnlyPosition(t *testing.T) {
	repo := newStubTaskRepo()
	repo.tasks[7] = &domain.Task{ID: 7, ProjectID: 1, Title: "card", Status: domain.TaskTodo}
	svc := NewTaskService(repo, newStubMilestoneRepo(), zerolog.Nop())

	done := domain.TaskDone
	task, err := svc.Reorder(context.Background(), ports.ReorderTaskInput{
		ID:         7,
		OrderIndex: 42,
		Status:     &done,
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if task.OrderIndex != 42 || task.Status != domain.TaskDone {
		t.Fatalf("unexpected task after reorder: %+v", task)
	}

	for key := range repo.lastFields {
		switch key {
		case "order_index", "status", "updated_at":
		default:
			t.Fatalf("reorder touched unexpected column %q", key)
		}
	}
}

func TestTaskService_Reorder_NotFound(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), newStubMilestoneRepo(), zerolog.Nop())

	_, err := svc.Reorder(context.Background(), ports.ReorderTaskInput{ID: 99, OrderIndex: 1})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
