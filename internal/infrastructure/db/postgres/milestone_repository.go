package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, constraintError(err, nil)
	}
	return m, nil
}

func (r *MilestoneRepository) FindByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	var m domain.Milestone
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Milestone, error) {
	var milestones []domain.Milestone
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_date ASC NULLS LAST").
		Order("id DESC").
		Find(&milestones).Error
	if err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *MilestoneRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Milestone, error) {
	res := r.db.WithContext(ctx).Model(&domain.Milestone{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrMilestoneNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MilestoneRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Milestone{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMilestoneNotFound
	}
	return nil
}
