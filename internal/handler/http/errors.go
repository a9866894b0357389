package http

// Response messages. The exact wording is part of the public API contract
// and is matched verbatim by clients.
const (
	msgInvalidJSON      = "Invalid JSON"
	msgMissingFields    = "Missing required fields"
	msgEndpointNotFound = "Endpoint not found"
	msgCustomerNotFound = "Customer not found"
	msgVehicleNotFound  = "Vehicle not found"

	msgCustomerCreated = "Customer created successfully"
	msgVehicleCreated  = "Customer vehicle created successfully"

	msgCustomerCreationFailed = "Customer creation failed: "
	msgVehicleCreationFailed  = "Vehicle creation failed: "
)
