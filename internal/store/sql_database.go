package store

import (
	"context"
	"database/sql"

	"github.com/quotely/quote-service/internal/config"
	"github.com/quotely/quote-service/internal/logger"
)

// DB wraps the standard library connection handle so repositories share one
// connection pool and one logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// "pgx" selects PostgreSQL, "sqlite3" the local development backend.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}
