package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, constraintError(err, nil)
	}
	return t, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List applies the kanban ordering: order_index descending, id descending on
// ties. Archived rows are filtered out unless the caller opts in.
func (r *TaskRepository) List(ctx context.Context, f ports.ListTasksFilter) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).Model(&domain.Task{}).Where("project_id = ?", f.ProjectID)
	if !f.IncludeArchived {
		q = q.Where("is_archived = ?", false)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var tasks []domain.Task
	if err := q.Order("order_index DESC").Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Task, error) {
	res := r.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
