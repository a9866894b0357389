package service

import (
	"context"

	"github.com/quotely/quote-service/models"
)

// hand-rolled repository fakes; each call is recorded so tests can assert
// on what reached the store layer.

type fakeCustomerRepository struct {
	createdCustomer models.Customer
	createErr       error

	storedCustomer models.Customer
	getErr         error
}

func (f *fakeCustomerRepository) CreateCustomer(_ context.Context, customer models.Customer) (models.Customer, error) {
	f.createdCustomer = customer
	if f.createErr != nil {
		return models.Customer{}, f.createErr
	}
	created := customer
	created.CustomerID = 1
	return created, nil
}

func (f *fakeCustomerRepository) GetCustomerByID(_ context.Context, customerID int64) (models.Customer, error) {
	if f.getErr != nil {
		return models.Customer{}, f.getErr
	}
	found := f.storedCustomer
	found.CustomerID = customerID
	return found, nil
}

type fakeVehicleRepository struct {
	createdVehicle models.Vehicle
	createErr      error

	storedVehicle models.Vehicle
	getErr        error
}

func (f *fakeVehicleRepository) CreateVehicle(_ context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	f.createdVehicle = vehicle
	if f.createErr != nil {
		return models.Vehicle{}, f.createErr
	}
	created := vehicle
	created.VehicleID = 1
	return created, nil
}

func (f *fakeVehicleRepository) GetVehicleOfCustomer(_ context.Context, vehicleID, customerID int64) (models.Vehicle, error) {
	if f.getErr != nil {
		return models.Vehicle{}, f.getErr
	}
	found := f.storedVehicle
	found.VehicleID = vehicleID
	found.CustomerID = customerID
	return found, nil
}

type fakeQuoteRepository struct {
	createdQuote models.Quote
	createCalls  int
	createErr    error
}

func (f *fakeQuoteRepository) CreateQuote(_ context.Context, quote models.Quote) (models.Quote, error) {
	f.createCalls++
	f.createdQuote = quote
	if f.createErr != nil {
		return models.Quote{}, f.createErr
	}
	created := quote
	created.QuoteID = 11
	return created, nil
}
