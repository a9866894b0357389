package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/models"
)

// customerRepository is the SQL-backed implementation of [CustomerRepository].
// It handles customer creation and lookup against the "customer" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer persists a new customer record and returns it with the
// store-assigned CustomerID.
//
// The INSERT uses the [createCustomer] query which returns the new id via a
// RETURNING clause. An empty Phone is stored as NULL.
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	phone := sql.NullString{String: customer.Phone, Valid: customer.Phone != ""}
	row := r.db.QueryRowContext(ctx, createCustomer,
		customer.FirstName, customer.LastName, customer.DateOfBirth, customer.Email, phone)

	if err := row.Scan(&customer.CustomerID); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error inserting customer")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return customer, nil
}

// GetCustomerByID retrieves a customer record by its id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrCustomerNotFound].
//   - Query building failure → wrapped [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *customerRepository) GetCustomerByID(ctx context.Context, customerID int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCustomerQuery(customerID)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetCustomerByID").Msg("error building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Customer
	var phone sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.CustomerID, &found.FirstName, &found.LastName, &found.DateOfBirth, &found.Email, &phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "*customerRepository.GetCustomerByID").Msg("error: scanning error")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	found.Phone = phone.String

	return found, nil
}
