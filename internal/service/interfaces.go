package service

import (
	"context"

	"github.com/quotely/quote-service/models"
)

// CustomerService handles customer registration.
type CustomerService interface {
	// CreateCustomer sanitizes the free-text fields of customer and persists
	// it, returning the stored record with its CustomerID populated.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// GetCustomerByID retrieves a stored customer.
	// Returns store.ErrCustomerNotFound when no such customer exists.
	GetCustomerByID(ctx context.Context, customerID int64) (models.Customer, error)
}

// VehicleService handles vehicle registration for existing customers.
type VehicleService interface {
	// AddVehicle sanitizes the model name and persists the vehicle,
	// returning the stored record with its VehicleID populated.
	AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
}

// QuoteService computes and persists insurance quotes.
type QuoteService interface {
	// GenerateQuote prices the (customer, vehicle) pair, persists a new
	// quote row, and returns it.
	//
	// Errors:
	//   - store.ErrCustomerNotFound when the customer does not exist.
	//   - store.ErrVehicleNotFound when the vehicle does not exist or
	//     belongs to a different customer.
	//   - ErrInvalidDateOfBirth when the stored date of birth cannot be
	//     parsed; no quote row is written in that case.
	GenerateQuote(ctx context.Context, customerID, vehicleID int64) (models.Quote, error)
}
