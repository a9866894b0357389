package http

import (
	"net/http"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/utils"
	"github.com/quotely/quote-service/models"
)

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fields, err := decodeBody(r)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if !hasFields(fields, "first_name", "last_name", "date_of_birth", "email") {
		log.Warn().Msg("customer payload misses required fields")
		writeError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	customer := models.Customer{
		FirstName:   stringField(fields["first_name"]),
		LastName:    stringField(fields["last_name"]),
		DateOfBirth: stringField(fields["date_of_birth"]),
		Email:       stringField(fields["email"]),
	}
	if raw, ok := fields["phone"]; ok && string(raw) != "null" {
		customer.Phone = stringField(raw)
	}

	created, err := h.services.CustomerService.CreateCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during customer creation")
		writeError(w, msgCustomerCreationFailed+err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.CustomerCreatedResponse{
		Message:    msgCustomerCreated,
		CustomerID: created.CustomerID,
	}, http.StatusOK)
}
