package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/store"
	"github.com/quotely/quote-service/models"
)

// quoteValidityDays is the length of a quote's validity window in calendar
// days: valid_until = valid_from + quoteValidityDays.
const quoteValidityDays = 30

// dateOfBirthLayouts lists the accepted shapes of a stored date of birth,
// tried in order at quote-generation time.
var dateOfBirthLayouts = []string{
	models.DateLayout,
	models.TimestampLayout,
}

// quoteService is the concrete implementation of QuoteService.
//
// Quote generation is a linear flow: customer lookup, vehicle lookup,
// calculation, persist. Each step exits early on failure and nothing is
// written before the final step. No transaction spans the lookups and the
// insert; the store is append-only in practice, so a record disappearing
// between lookup and insert is not protected against.
type quoteService struct {
	customerRepository store.CustomerRepository
	vehicleRepository  store.VehicleRepository
	quoteRepository    store.QuoteRepository

	// now supplies the current time; injectable for deterministic tests.
	now func() time.Time

	logger *logger.Logger
}

// NewQuoteService constructs a QuoteService wired to the given repositories.
func NewQuoteService(
	customerRepository store.CustomerRepository,
	vehicleRepository store.VehicleRepository,
	quoteRepository store.QuoteRepository,
	logger *logger.Logger,
) QuoteService {
	return &quoteService{
		customerRepository: customerRepository,
		vehicleRepository:  vehicleRepository,
		quoteRepository:    quoteRepository,
		now:                time.Now,
		logger:             logger,
	}
}

// GenerateQuote prices the (customer, vehicle) pair and persists the result
// as a new quote row. Every call inserts a fresh row, even when an
// equivalent quote already exists.
func (s *quoteService) GenerateQuote(ctx context.Context, customerID, vehicleID int64) (models.Quote, error) {
	log := logger.FromContext(ctx)

	customer, err := s.customerRepository.GetCustomerByID(ctx, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("customer lookup failed")
		return models.Quote{}, err
	}

	vehicle, err := s.vehicleRepository.GetVehicleOfCustomer(ctx, vehicleID, customerID)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Int64("vehicle_id", vehicleID).Msg("vehicle lookup failed")
		return models.Quote{}, err
	}

	dateOfBirth, err := parseDateOfBirth(customer.DateOfBirth)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("stored date of birth is not a calendar date")
		return models.Quote{}, err
	}

	now := s.now()
	amount := CalculateQuote(dateOfBirth, vehicle.Year, vehicle.Value, now)

	quote := models.Quote{
		CustomerID: customerID,
		VehicleID:  vehicleID,
		Amount:     amount,
		ValidFrom:  now,
		ValidUntil: now.AddDate(0, 0, quoteValidityDays),
		CreatedAt:  now,
	}

	created, err := s.quoteRepository.CreateQuote(ctx, quote)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Int64("vehicle_id", vehicleID).Msg("quote creation ended with error")
		return models.Quote{}, fmt.Errorf("quote creation ended with error: %w", err)
	}

	log.Debug().
		Int64("quote_id", created.QuoteID).
		Float64("quote_amount", created.Amount).
		Msg("quote generated")

	return created, nil
}

// parseDateOfBirth parses a stored date of birth, trying each accepted
// layout in order. The returned error wraps [ErrInvalidDateOfBirth] and
// carries the offending value.
func parseDateOfBirth(value string) (time.Time, error) {
	for _, layout := range dateOfBirthLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w - cannot parse %q as a calendar date", ErrInvalidDateOfBirth, value)
}
