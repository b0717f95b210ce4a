package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/migrations"
)

// DB wraps the sql.DB connection together with the placeholder-aware query
// builder and the driver's conflict classifier, so repositories stay free of
// driver-specific branching where possible.
type DB struct {
	*sql.DB

	driver     string
	builder    sq.StatementBuilderType
	classifier ConflictClassifier
	logger     *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, verifies it with a ping, and applies pending goose migrations.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	if err = migrations.Migrate(conn, migrations.DialectPostgres); err != nil {
		return nil, err
	}

	return &DB{
		DB:         conn,
		driver:     config.DriverPostgres,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}, nil
}

// NewConnectSQLite opens (creating if necessary) a SQLite database at the
// DSN path and applies pending goose migrations.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// SQLite serialises writers; a single connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn, migrations.DialectSQLite); err != nil {
		return nil, err
	}

	return &DB{
		DB:         conn,
		driver:     config.DriverSQLite,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: NewSQLiteErrorClassifier(),
		logger:     log,
	}, nil
}

// Ping implements [Pinger].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// supportsReturning reports whether INSERT ... RETURNING can be used to read
// back server-assigned IDs. The pgx driver has no LastInsertId, so postgres
// requires RETURNING; the bundled sqlite3 build predates reliable RETURNING
// support, so sqlite uses LastInsertId instead.
func (db *DB) supportsReturning() bool {
	return db.driver == config.DriverPostgres
}
