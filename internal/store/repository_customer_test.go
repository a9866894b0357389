package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/models"
)

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &customerRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-15",
		Email:       "jane@example.com",
		Phone:       "555-0101",
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(7)

	mock.ExpectQuery("INSERT INTO customer").
		WithArgs(customer.FirstName, customer.LastName, customer.DateOfBirth, customer.Email, sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateCustomer(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CustomerID != 7 {
		t.Errorf("expected CustomerID=7, got %d", created.CustomerID)
	}
	if created.FirstName != customer.FirstName {
		t.Errorf("expected first name %s, got %s", customer.FirstName, created.FirstName)
	}
}

func TestCreateCustomer_EmptyPhoneStoredAsNull(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-15",
		Email:       "jane@example.com",
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)

	mock.ExpectQuery("INSERT INTO customer").
		WithArgs(customer.FirstName, customer.LastName, customer.DateOfBirth, customer.Email, nil).
		WillReturnRows(rows)

	_, err := repo.CreateCustomer(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateCustomer_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO customer").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateCustomer(ctx, models.Customer{FirstName: "Jane"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetCustomerByID_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "date_of_birth", "email", "phone"}).
		AddRow(7, "Jane", "Doe", "1990-04-15", "jane@example.com", "555-0101")

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.GetCustomerByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.CustomerID != 7 {
		t.Errorf("expected CustomerID=7, got %d", found.CustomerID)
	}
	if found.Phone != "555-0101" {
		t.Errorf("expected phone 555-0101, got %s", found.Phone)
	}
}

func TestGetCustomerByID_NullPhone(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "date_of_birth", "email", "phone"}).
		AddRow(7, "Jane", "Doe", "1990-04-15", "jane@example.com", nil)

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.GetCustomerByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Phone != "" {
		t.Errorf("expected empty phone for NULL column, got %q", found.Phone)
	}
}

func TestGetCustomerByID_NotFound(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCustomerByID(ctx, 404)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestGetCustomerByID_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetCustomerByID(ctx, 7)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
