package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quotely/quote-service/internal/config"
	"github.com/quotely/quote-service/internal/logger"
)

// sqliteBootstrap creates the schema for the local development backend.
// PostgreSQL uses goose migrations instead (see the migrations package);
// SQLite gets the equivalent tables inline because the embedded migration
// SQL is written for the pgx dialect.
const sqliteBootstrap = `
	CREATE TABLE IF NOT EXISTS customer (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		email         TEXT NOT NULL,
		phone         TEXT
	);

	CREATE TABLE IF NOT EXISTS vehicle (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL REFERENCES customer (id),
		model_name  TEXT    NOT NULL,
		year        INTEGER NOT NULL,
		value       REAL    NOT NULL
	);

	CREATE TABLE IF NOT EXISTS quote (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id  INTEGER NOT NULL,
		vehicle_id   INTEGER NOT NULL,
		quote_amount REAL    NOT NULL,
		valid_from   TEXT    NOT NULL,
		valid_until  TEXT    NOT NULL,
		created_at   TEXT    NOT NULL
	);`

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	if _, err = conn.ExecContext(ctx, sqliteBootstrap); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
	}

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
