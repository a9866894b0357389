package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/store"
	"github.com/quotely/quote-service/models"
)

var quoteNow = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func newQuoteServiceForTest(
	customers *fakeCustomerRepository,
	vehicles *fakeVehicleRepository,
	quotes *fakeQuoteRepository,
) *quoteService {
	svc := NewQuoteService(customers, vehicles, quotes, logger.Nop()).(*quoteService)
	svc.now = func() time.Time { return quoteNow }
	return svc
}

func TestGenerateQuote_Success(t *testing.T) {
	customers := &fakeCustomerRepository{
		storedCustomer: models.Customer{
			FirstName:   "Jane",
			LastName:    "Doe",
			DateOfBirth: "1996-05-10",
			Email:       "jane@example.com",
		},
	}
	vehicles := &fakeVehicleRepository{
		storedVehicle: models.Vehicle{ModelName: "Corolla", Year: 2005, Value: 35000},
	}
	quotes := &fakeQuoteRepository{}

	svc := newQuoteServiceForTest(customers, vehicles, quotes)

	got, err := svc.GenerateQuote(context.Background(), 7, 3)
	require.NoError(t, err)

	// age 30 in August 2026, old vehicle and high value uplifts apply
	assert.Equal(t, int64(11), got.QuoteID)
	assert.Equal(t, int64(7), got.CustomerID)
	assert.Equal(t, int64(3), got.VehicleID)
	assert.Equal(t, 126.50, got.Amount)
	assert.Equal(t, quoteNow, got.ValidFrom)
	assert.Equal(t, quoteNow.AddDate(0, 0, 30), got.ValidUntil)
	assert.Equal(t, quoteNow, got.CreatedAt)

	assert.Equal(t, 1, quotes.createCalls)
	assert.Equal(t, 126.50, quotes.createdQuote.Amount)
}

func TestGenerateQuote_TimestampDateOfBirth(t *testing.T) {
	customers := &fakeCustomerRepository{
		storedCustomer: models.Customer{DateOfBirth: "2006-09-01 00:00:00"},
	}
	vehicles := &fakeVehicleRepository{
		storedVehicle: models.Vehicle{Year: 2015, Value: 20000},
	}
	quotes := &fakeQuoteRepository{}

	svc := newQuoteServiceForTest(customers, vehicles, quotes)

	got, err := svc.GenerateQuote(context.Background(), 7, 3)
	require.NoError(t, err)

	// 20th birthday has not yet passed, young driver uplift applies
	assert.Equal(t, 120.00, got.Amount)
}

func TestGenerateQuote_CustomerNotFound(t *testing.T) {
	customers := &fakeCustomerRepository{getErr: store.ErrCustomerNotFound}
	vehicles := &fakeVehicleRepository{}
	quotes := &fakeQuoteRepository{}

	svc := newQuoteServiceForTest(customers, vehicles, quotes)

	_, err := svc.GenerateQuote(context.Background(), 7, 3)

	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
	assert.Zero(t, quotes.createCalls)
}

func TestGenerateQuote_VehicleNotFound(t *testing.T) {
	customers := &fakeCustomerRepository{
		storedCustomer: models.Customer{DateOfBirth: "1996-05-10"},
	}
	vehicles := &fakeVehicleRepository{getErr: store.ErrVehicleNotFound}
	quotes := &fakeQuoteRepository{}

	svc := newQuoteServiceForTest(customers, vehicles, quotes)

	_, err := svc.GenerateQuote(context.Background(), 7, 3)

	assert.ErrorIs(t, err, store.ErrVehicleNotFound)
	assert.Zero(t, quotes.createCalls)
}

func TestGenerateQuote_InvalidDateOfBirth(t *testing.T) {
	customers := &fakeCustomerRepository{
		storedCustomer: models.Customer{DateOfBirth: "not-a-date"},
	}
	vehicles := &fakeVehicleRepository{
		storedVehicle: models.Vehicle{Year: 2015, Value: 20000},
	}
	quotes := &fakeQuoteRepository{}

	svc := newQuoteServiceForTest(customers, vehicles, quotes)

	_, err := svc.GenerateQuote(context.Background(), 7, 3)

	assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
	assert.Zero(t, quotes.createCalls, "nothing should be written for an unparseable date of birth")
}

func TestGenerateQuote_InsertError(t *testing.T) {
	insertErr := errors.New("insert failed")

	customers := &fakeCustomerRepository{
		storedCustomer: models.Customer{DateOfBirth: "1996-05-10"},
	}
	vehicles := &fakeVehicleRepository{
		storedVehicle: models.Vehicle{Year: 2015, Value: 20000},
	}
	quotes := &fakeQuoteRepository{createErr: insertErr}

	svc := newQuoteServiceForTest(customers, vehicles, quotes)

	_, err := svc.GenerateQuote(context.Background(), 7, 3)

	assert.ErrorIs(t, err, insertErr)
}

func TestParseDateOfBirth(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"plain date", "1996-05-10", time.Date(1996, 5, 10, 0, 0, 0, 0, time.UTC), false},
		{"timestamp", "1996-05-10 08:15:00", time.Date(1996, 5, 10, 8, 15, 0, 0, time.UTC), false},
		{"garbage", "yesterday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateOfBirth(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
