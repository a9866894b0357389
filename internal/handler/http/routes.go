package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/customer", h.createCustomer)
	router.Post("/api/customer/{customerID}/vehicle", h.addVehicle)
	router.Get("/api/quote/{customerID}/{vehicleID}", h.generateQuote)

	// unknown paths and unsupported methods both answer 404,
	// never 405: the route table is deliberately opaque
	router.NotFound(h.endpointNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) endpointNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, msgEndpointNotFound, http.StatusNotFound)
}
