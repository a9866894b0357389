package models

// Customer represents a policy holder registered through the public API.
// All free-text fields are stored in sanitized form (trimmed, tag-stripped,
// HTML-escaped); see the service layer for the exact rules.
type Customer struct {
	// CustomerID is the store-assigned identifier of the customer.
	// It is populated by the database on insert.
	CustomerID int64 `json:"customer_id"`

	// FirstName is the customer's given name. Always present.
	FirstName string `json:"first_name"`

	// LastName is the customer's family name. Always present.
	LastName string `json:"last_name"`

	// DateOfBirth is stored exactly as submitted by the caller.
	// It is parsed and validated only when a quote is generated,
	// never at creation time.
	DateOfBirth string `json:"date_of_birth"`

	// Email is the customer's e-mail address after the email character
	// filter has been applied. The result is not guaranteed to be a
	// well-formed address.
	Email string `json:"email"`

	// Phone is an optional contact number. Empty when not provided.
	Phone string `json:"phone,omitempty"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customer"
}
