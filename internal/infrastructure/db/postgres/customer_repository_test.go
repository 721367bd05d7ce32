package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCustomerRepository_List_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	// The ILIKE pattern is a bound parameter; the search term itself never
	// lands in the SQL text.
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE title ILIKE \$1 ORDER BY created_at DESC`).
		WithArgs("%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, err := repo.List(context.Background(), "acme")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	expectationsMet(t, mock)
}

func TestCustomerRepository_List_NoSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	expectationsMet(t, mock)
}
