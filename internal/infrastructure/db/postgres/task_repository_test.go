package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

func TestTaskRepository_List_KanbanOrdering(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	// Archived rows stay out, the search term reaches the database as a bound
	// pattern, and ties on order_index break on id.
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 AND is_archived = \$2 AND \(title ILIKE \$3 OR description ILIKE \$4\) ORDER BY order_index DESC,id DESC`).
		WithArgs(int64(7), false, "%fix%", "%fix%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title"}))

	_, err := repo.List(context.Background(), ports.ListTasksFilter{
		ProjectID: 7,
		Search:    "fix",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	expectationsMet(t, mock)
}

func TestTaskRepository_List_IncludeArchived(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 ORDER BY order_index DESC,id DESC`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title"}))

	_, err := repo.List(context.Background(), ports.ListTasksFilter{
		ProjectID:       9,
		IncludeArchived: true,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	expectationsMet(t, mock)
}

func TestTaskRepository_List_StatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 AND is_archived = \$2 AND status = \$3 ORDER BY order_index DESC,id DESC`).
		WithArgs(int64(7), false, "todo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title"}))

	_, err := repo.List(context.Background(), ports.ListTasksFilter{
		ProjectID: 7,
		Status:    "todo",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	expectationsMet(t, mock)
}

func TestTaskRepository_Create_UnknownProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &domain.Task{
		ProjectID: 404,
		Title:     "Ship it",
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	expectationsMet(t, mock)
}
