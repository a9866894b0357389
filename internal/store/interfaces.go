package store

import (
	"context"

	"github.com/quotely/quote-service/models"
)

// CustomerRepository persists and retrieves customer records.
type CustomerRepository interface {
	// CreateCustomer inserts a new customer and returns it with the
	// store-assigned CustomerID populated.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// GetCustomerByID retrieves a customer by id.
	// Returns ErrCustomerNotFound when no such customer exists.
	GetCustomerByID(ctx context.Context, customerID int64) (models.Customer, error)
}

// VehicleRepository persists and retrieves vehicle records.
type VehicleRepository interface {
	// CreateVehicle inserts a new vehicle for an existing customer and
	// returns it with the store-assigned VehicleID populated.
	// Returns ErrCustomerMissing when the referenced customer does not exist.
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)

	// GetVehicleOfCustomer retrieves a vehicle by id, constrained to the
	// given owner. Returns ErrVehicleNotFound when the vehicle does not
	// exist or belongs to a different customer.
	GetVehicleOfCustomer(ctx context.Context, vehicleID, customerID int64) (models.Vehicle, error)
}

// QuoteRepository persists quote records. Quotes are append-only.
type QuoteRepository interface {
	// CreateQuote inserts a new quote row and returns it with the
	// store-assigned QuoteID populated.
	CreateQuote(ctx context.Context, quote models.Quote) (models.Quote, error)
}
