package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/service"
	"github.com/quotely/quote-service/internal/store"
	"github.com/quotely/quote-service/internal/utils"
	"github.com/quotely/quote-service/models"
)

func (h *Handler) generateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID, ok := numericPathParam(chi.URLParam(r, "customerID"))
	if !ok {
		h.endpointNotFound(w, r)
		return
	}
	vehicleID, ok := numericPathParam(chi.URLParam(r, "vehicleID"))
	if !ok {
		h.endpointNotFound(w, r)
		return
	}

	quote, err := h.services.QuoteService.GenerateQuote(ctx, customerID, vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCustomerNotFound):
			log.Err(err).Int64("customer_id", customerID).Msg("customer not found")
			writeError(w, msgCustomerNotFound, statusFromError(err))
		case errors.Is(err, store.ErrVehicleNotFound):
			log.Err(err).Int64("vehicle_id", vehicleID).Msg("vehicle not found")
			writeError(w, msgVehicleNotFound, statusFromError(err))
		case errors.Is(err, service.ErrInvalidDateOfBirth):
			log.Err(err).Int64("customer_id", customerID).Msg("stored date of birth is not parseable")
			writeError(w, err.Error(), statusFromError(err))
		default:
			log.Err(err).Msg("unexpected error occurred during quote generation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	_, _ = utils.WriteJSON(w, models.QuoteResponse{
		QuoteID:     quote.QuoteID,
		CustomerID:  quote.CustomerID,
		VehicleID:   quote.VehicleID,
		QuoteAmount: quote.Amount,
		ValidFrom:   quote.ValidFrom.Format(models.DateLayout),
		ValidUntil:  quote.ValidUntil.Format(models.DateLayout),
		GeneratedAt: quote.CreatedAt.Format(models.TimestampLayout),
	}, http.StatusOK)
}
