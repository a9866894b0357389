package service

import (
	"context"
	"fmt"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/internal/store"
	"github.com/quotely/quote-service/models"
)

// vehicleService is the concrete implementation of VehicleService.
type vehicleService struct {
	vehicleRepository store.VehicleRepository

	logger *logger.Logger
}

// NewVehicleService constructs a VehicleService wired to the given
// VehicleRepository.
func NewVehicleService(vehicleRepository store.VehicleRepository, logger *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepository: vehicleRepository,
		logger:            logger,
	}
}

// AddVehicle sanitizes the model name and persists the vehicle for its
// owning customer. Year and Value are stored as coerced by the transport
// layer.
func (s *vehicleService) AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	vehicle.ModelName = SanitizeText(vehicle.ModelName)

	created, err := s.vehicleRepository.CreateVehicle(ctx, vehicle)
	if err != nil {
		log.Err(err).Int64("customer_id", vehicle.CustomerID).Msg("vehicle creation ended with error")
		return models.Vehicle{}, fmt.Errorf("vehicle creation ended with error: %w", err)
	}

	log.Debug().Int64("vehicle_id", created.VehicleID).Int64("customer_id", created.CustomerID).Msg("vehicle created")

	return created, nil
}
