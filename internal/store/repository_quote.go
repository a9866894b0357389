package store

import (
	"context"
	"fmt"

	"github.com/quotely/quote-service/internal/logger"
	"github.com/quotely/quote-service/models"
)

// quoteRepository is the SQL-backed implementation of [QuoteRepository].
// Quote rows are append-only: there is no update or delete path, and no
// uniqueness constraint on (customer_id, vehicle_id).
type quoteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuoteRepository constructs a [QuoteRepository] backed by the provided
// database connection and logger.
func NewQuoteRepository(db *DB, logger *logger.Logger) QuoteRepository {
	logger.Debug().Msg("creating quote repository")
	return &quoteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuote persists a new quote row and returns it with the
// store-assigned QuoteID. Dates are stored in their wire formats:
// valid_from/valid_until as "YYYY-MM-DD", created_at as
// "YYYY-MM-DD HH:MM:SS".
func (r *quoteRepository) CreateQuote(ctx context.Context, quote models.Quote) (models.Quote, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createQuote,
		quote.CustomerID,
		quote.VehicleID,
		quote.Amount,
		quote.ValidFrom.Format(models.DateLayout),
		quote.ValidUntil.Format(models.DateLayout),
		quote.CreatedAt.Format(models.TimestampLayout),
	)

	if err := row.Scan(&quote.QuoteID); err != nil {
		log.Err(err).Str("func", "*quoteRepository.CreateQuote").Msg("error inserting quote")
		return models.Quote{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return quote, nil
}
