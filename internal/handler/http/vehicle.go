package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/utils"
	"github.com/quotely/quote-service/models"
)

func (h *Handler) addVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, ok := numericPathParam(chi.URLParam(r, "customerID"))
	if !ok {
		h.endpointNotFound(w, r)
		return
	}

	fields, err := decodeBody(r)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if !hasFields(fields, "model_name", "year", "value") {
		log.Warn().Int64("customer_id", customerID).Msg("vehicle payload misses required fields")
		writeError(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	vehicle := models.Vehicle{
		CustomerID: customerID,
		ModelName:  stringField(fields["model_name"]),
		Year:       intField(fields["year"]),
		Value:      floatField(fields["value"]),
	}

	created, err := h.services.VehicleService.AddVehicle(ctx, vehicle)
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Msg("unexpected error occurred during vehicle creation")
		writeError(w, msgVehicleCreationFailed+err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.VehicleCreatedResponse{
		Message:   msgVehicleCreated,
		VehicleID: created.VehicleID,
	}, http.StatusOK)
}
