package store

import "github.com/quotely/quote-service/internal/logger"

// Repositories aggregates every repository implementation over a single
// database connection.
type Repositories struct {
	CustomerRepository CustomerRepository
	VehicleRepository  VehicleRepository
	QuoteRepository    QuoteRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		CustomerRepository: NewCustomerRepository(db, logger),
		VehicleRepository:  NewVehicleRepository(db, logger),
		QuoteRepository:    NewQuoteRepository(db, logger),
	}
}
