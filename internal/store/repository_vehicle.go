package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/models"
)

// vehicleRepository is the SQL-backed implementation of [VehicleRepository].
type vehicleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVehicleRepository constructs a [VehicleRepository] backed by the
// provided database connection and logger.
func NewVehicleRepository(db *DB, logger *logger.Logger) VehicleRepository {
	logger.Debug().Msg("creating vehicle repository")
	return &vehicleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVehicle persists a new vehicle record and returns it with the
// store-assigned VehicleID.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrCustomerMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vehicleRepository) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVehicle,
		vehicle.CustomerID, vehicle.ModelName, vehicle.Year, vehicle.Value)

	if err := row.Scan(&vehicle.VehicleID); err != nil {
		log.Err(err).Str("func", "*vehicleRepository.CreateVehicle").Msg("error inserting vehicle")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Vehicle{}, fmt.Errorf("%w: %w", ErrCustomerMissing, err)
		default:
			return models.Vehicle{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return vehicle, nil
}

// GetVehicleOfCustomer retrieves a vehicle by id, constrained to its owner.
// The owner constraint lives in the query itself so a vehicle belonging to a
// different customer is indistinguishable from a missing one.
//
// Error handling:
//   - sql.ErrNoRows → [ErrVehicleNotFound].
//   - Query building failure → wrapped [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vehicleRepository) GetVehicleOfCustomer(ctx context.Context, vehicleID, customerID int64) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetVehicleOfCustomerQuery(vehicleID, customerID)
	if err != nil {
		log.Err(err).Str("func", "*vehicleRepository.GetVehicleOfCustomer").Msg("error building query")
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Vehicle
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.VehicleID, &found.CustomerID, &found.ModelName, &found.Year, &found.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, ErrVehicleNotFound
		}
		log.Err(err).Str("func", "*vehicleRepository.GetVehicleOfCustomer").Msg("error: scanning error")
		return models.Vehicle{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
