// Package postgres implements the repository ports on top of gorm with the
// postgres driver. All caller-supplied values reach the database through
// bound parameters; search terms are never concatenated into SQL text.
package postgres

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// Open connects to the database behind dsn. TranslateError maps driver
// unique and foreign-key violations onto gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated so repositories can surface domain errors
// without inspecting pg error codes.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: empty DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	return db, nil
}

// constraintError maps translated driver constraint violations onto domain
// errors so clients see 4xx instead of a generic failure. onDuplicate is the
// sentinel for a unique violation; pass nil when the caller's insert has no
// unique constraint a client could trip.
func constraintError(err error, onDuplicate error) error {
	switch {
	case onDuplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return onDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrInvalidReference
	}
	return err
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.AuthUser{},
		&domain.Profile{},
		&domain.Customer{},
		&domain.Project{},
		&domain.Employee{},
		&domain.ProjectMember{},
		&domain.Milestone{},
		&domain.Task{},
	)
}
