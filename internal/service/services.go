package service

import (
	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/store"
)

type Services struct {
	CustomerService CustomerService
	VehicleService  VehicleService
	QuoteService    QuoteService
}

func NewServices(repos *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		CustomerService: NewCustomerService(repos.CustomerRepository, logger),
		VehicleService:  NewVehicleService(repos.VehicleRepository, logger),
		QuoteService:    NewQuoteService(repos.CustomerRepository, repos.VehicleRepository, repos.QuoteRepository, logger),
	}
}
