package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, constraintError(err, nil)
	}
	return p, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context, search string) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Model(&domain.Project{})
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}

	var projects []domain.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Project, error) {
	res := r.db.WithContext(ctx).Model(&domain.Project{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
