package models

// Vehicle is a customer-owned vehicle. A vehicle always belongs to exactly
// one customer and is immutable after creation.
type Vehicle struct {
	// VehicleID is the store-assigned identifier of the vehicle.
	VehicleID int64 `json:"vehicle_id"`

	// CustomerID references the owning customer.
	CustomerID int64 `json:"customer_id"`

	// ModelName is the sanitized model name.
	ModelName string `json:"model_name"`

	// Year is the manufacture year.
	Year int `json:"year"`

	// Value is the declared value of the vehicle.
	Value float64 `json:"value"`
}

// TableName returns the name of the database table
// associated with the Vehicle model.
func (v Vehicle) TableName() string {
	return "vehicle"
}
