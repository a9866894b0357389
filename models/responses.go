package models

// ErrorResponse is the uniform JSON error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CustomerCreatedResponse is returned by POST /api/customer on success.
type CustomerCreatedResponse struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customer_id"`
}

// VehicleCreatedResponse is returned by POST /api/customer/{id}/vehicle
// on success.
type VehicleCreatedResponse struct {
	Message   string `json:"message"`
	VehicleID int64  `json:"vehicle_id"`
}

// QuoteResponse is returned by GET /api/quote/{customer_id}/{vehicle_id}.
// Dates are formatted with DateLayout, the generation timestamp with
// TimestampLayout.
type QuoteResponse struct {
	QuoteID     int64   `json:"quote_id"`
	CustomerID  int64   `json:"customer_id"`
	VehicleID   int64   `json:"vehicle_id"`
	QuoteAmount float64 `json:"quote_amount"`
	ValidFrom   string  `json:"valid_from"`
	ValidUntil  string  `json:"valid_until"`
	GeneratedAt string  `json:"generated_at"`
}
