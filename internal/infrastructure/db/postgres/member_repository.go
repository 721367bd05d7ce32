package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/backoffice/internal/core/domain"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	q := r.db.WithContext(ctx).Model(&domain.Employee{})
	if search != "" {
		q = q.Where("surname ILIKE ?", "%"+search+"%")
	}

	var employees []domain.Employee
	if err := q.Order("id DESC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *MemberRepository) AddProjectMember(ctx context.Context, projectID, userID int64) (*domain.ProjectMember, error) {
	m := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		AddedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, constraintError(err, domain.ErrMemberExists)
	}
	return m, nil
}

func (r *MemberRepository) ListProjectMembers(ctx context.Context, projectID int64) ([]domain.ProjectMember, error) {
	var members []domain.ProjectMember
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&domain.ProjectMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
