// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed Go client for the quote service's REST API.
//
// The primary abstraction is [QuoteClient], which decouples callers from the
// wire format. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/quotely/quote-service/models"
)

// QuoteClient defines typed access to the quote service API. Implementations
// are responsible for serialisation and for mapping transport-level errors to
// the sentinel values defined in this package.
type QuoteClient interface {
	// CreateCustomer registers a new customer and returns the assigned id.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.CustomerCreatedResponse, error)

	// AddVehicle registers a vehicle for an existing customer.
	AddVehicle(ctx context.Context, customerID int64, vehicle models.Vehicle) (models.VehicleCreatedResponse, error)

	// RequestQuote asks the service to price the (customer, vehicle) pair.
	RequestQuote(ctx context.Context, customerID, vehicleID int64) (models.QuoteResponse, error)
}
