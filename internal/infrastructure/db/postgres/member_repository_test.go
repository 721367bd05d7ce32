package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskhive/backoffice/internal/core/domain"
)

func TestAddProjectMember_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "project_members"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.AddProjectMember(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrMemberExists) {
		t.Fatalf("expected ErrMemberExists, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAddProjectMember_UnknownProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "project_members"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, err := repo.AddProjectMember(context.Background(), 999, 2)
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	expectationsMet(t, mock)
}
