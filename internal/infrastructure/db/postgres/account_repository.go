package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// AccountRepository spans the auth_users and profiles tables. Multi-row
// operations run inside a transaction so an account can never be half
// created or half deleted.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, user *domain.AuthUser, profile *domain.Profile) (*domain.Profile, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return constraintError(err, domain.ErrEmailTaken)
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AccountRepository) List(ctx context.Context, search string) ([]domain.Profile, error) {
	q := r.db.WithContext(ctx).Model(&domain.Profile{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("email ILIKE ? OR username ILIKE ? OR full_name ILIKE ?", pattern, pattern, pattern)
	}

	var profiles []domain.Profile
	if err := q.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, fields map[string]any, role *string) (*domain.Profile, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Profile{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}
		if role != nil {
			return tx.Model(&domain.AuthUser{}).Where("id = ?", id).
				Updates(map[string]any{"role": *role, "updated_at": time.Now().UTC()}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&domain.Profile{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}
		return tx.Where("id = ?", id).Delete(&domain.AuthUser{}).Error
	})
}

// FindByEmail and SetPassword implement ports.AuthRepository; the identity
// provider shares its storage with account management.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	var u domain.AuthUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountRepository) SetPassword(ctx context.Context, userID, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&domain.AuthUser{}).Where("id = ?", userID).
		Updates(map[string]any{"password_hash": passwordHash, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
