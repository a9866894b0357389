package service

import (
	"context"
	"fmt"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/store"
	"github.com/quotely/quote-service/models"
)

// customerService is the concrete implementation of CustomerService.
// It applies input sanitization before delegating persistence to a
// CustomerRepository.
type customerService struct {
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

// NewCustomerService constructs a CustomerService wired to the given
// CustomerRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

// CreateCustomer sanitizes the customer's free-text fields and persists the
// record.
//
// FirstName and LastName pass through SanitizeText, Email through
// SanitizeEmail. DateOfBirth and Phone are stored exactly as given:
// the date of birth is validated only at quote-generation time.
func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	customer.FirstName = SanitizeText(customer.FirstName)
	customer.LastName = SanitizeText(customer.LastName)
	customer.Email = SanitizeEmail(customer.Email)

	created, err := s.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Str("email", customer.Email).Msg("customer creation ended with error")
		return models.Customer{}, fmt.Errorf("customer creation ended with error: %w", err)
	}

	log.Debug().Int64("customer_id", created.CustomerID).Msg("customer created")

	return created, nil
}

// GetCustomerByID retrieves a stored customer record.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	found, err := s.customerRepository.GetCustomerByID(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("customer lookup failed")
		return models.Customer{}, err
	}

	return found, nil
}
