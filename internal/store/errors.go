package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCustomerNotFound is returned when a lookup by customer id produces
	// an empty result set.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrVehicleNotFound is returned when a lookup by vehicle id scoped to a
	// customer id produces an empty result set. A vehicle that exists but
	// belongs to a different customer is reported with this error too.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrCustomerMissing is returned when a vehicle INSERT fails the
	// foreign-key check because the referenced customer does not exist.
	ErrCustomerMissing = errors.New("referenced customer does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
