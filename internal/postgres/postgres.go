package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/listingdesk/backoffice/internal/config"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
)

const defaultConnectTimeout = 30 * time.Second

// DB wraps sqlx.DB to provide transaction management
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// Querier interface defines all database operations
// Both *sqlx.DB and *sqlx.Tx implement these methods
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// NewDB connects to postgres, retrying with exponential backoff until the
// configured connect timeout runs out
func NewDB(cfg *config.Configuration, logger *logger.Logger) (*DB, error) {
	dsn := cfg.Postgres.GetDSN()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = cfg.Postgres.ConnectTimeout
	if policy.MaxElapsedTime <= 0 {
		policy.MaxElapsedTime = defaultConnectTimeout
	}

	var db *sqlx.DB
	connect := func() error {
		var err error
		db, err = sqlx.Connect("postgres", dsn)
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.Warnw("postgres not reachable, retrying",
			"host", cfg.Postgres.Host,
			"retry_in", wait.String(),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(connect, policy, notify); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to the database").
			Mark(ierr.ErrDatabase)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetimeMinutes) * time.Minute)

	logger.Infow("connected to postgres", "host", cfg.Postgres.Host, "database", cfg.Postgres.DBName)
	return &DB{DB: db, logger: logger}, nil
}

// NewFromSQL wraps an already open connection, e.g. one created by sqlmock
func NewFromSQL(conn *sql.DB, logger *logger.Logger) *DB {
	return &DB{DB: sqlx.NewDb(conn, "postgres"), logger: logger}
}

// Close closes the database connection
func (db *DB) Close() {
	if err := db.DB.Close(); err != nil {
		db.logger.Errorw("error closing database", "error", err)
	}
}

// GetQuerier returns either the transaction from context or the base DB
func (db *DB) GetQuerier(ctx context.Context) Querier {
	if tx, ok := GetTx(ctx); ok {
		return NewTracedQuerier(tx.Tx, db.logger, tx.ID)
	}
	return NewTracedQuerier(db.DB, db.logger, "")
}
