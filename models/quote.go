package models

import "time"

// Date and timestamp layouts used on the wire and in the store.
// Dates serialize as "YYYY-MM-DD", timestamps as "YYYY-MM-DD HH:MM:SS".
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Quote is a priced, time-bounded offer for one (customer, vehicle) pair.
// Quotes are append-only: every quote request produces a new row, even if
// an equivalent quote already exists.
type Quote struct {
	// QuoteID is the store-assigned identifier of the quote.
	QuoteID int64 `json:"quote_id"`

	// CustomerID references the customer the quote was priced for.
	CustomerID int64 `json:"customer_id"`

	// VehicleID references the vehicle the quote was priced for. The vehicle
	// must belong to CustomerID; the store enforces this with a combined
	// lookup, not with FK cascading alone.
	VehicleID int64 `json:"vehicle_id"`

	// Amount is the final quote amount, rounded to 2 decimal places.
	Amount float64 `json:"quote_amount"`

	// ValidFrom is the first day the quote can be accepted.
	ValidFrom time.Time `json:"valid_from"`

	// ValidUntil is ValidFrom plus 30 calendar days.
	ValidUntil time.Time `json:"valid_until"`

	// CreatedAt is the moment the quote was generated.
	CreatedAt time.Time `json:"generated_at"`
}

// TableName returns the name of the database table
// associated with the Quote model.
func (q Quote) TableName() string {
	return "quote"
}
