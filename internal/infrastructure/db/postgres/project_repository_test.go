package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskhive/backoffice/internal/core/domain"
)

func TestProjectRepository_Create_UnknownCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "projects"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	customerID := int64(404)
	_, err := repo.Create(context.Background(), &domain.Project{
		CustomerID: &customerID,
		Title:      "Rollout",
		Status:     domain.ProjectPlanned,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	expectationsMet(t, mock)
}
