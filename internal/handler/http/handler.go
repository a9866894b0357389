package http

import (
	"net/http"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/service"
	"github.com/quotely/quote-service/internal/utils"
	"github.com/quotely/quote-service/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeError sends a JSON error body of the form {"error": "<message>"}.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
