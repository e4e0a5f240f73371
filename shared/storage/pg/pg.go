// Package pg provides core PostgreSQL database primitives for storage layers.
//
// Core Components:
//   - Querier: Interface for transaction-agnostic database operations
//   - WithTx: Helper for managing database transactions
//   - Connect: Configurable database connection establishment
//   - Error helpers: classification of *pq.Error codes
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/itchan-dev/mailadmin/shared/config"
	"github.com/lib/pq" // Registers the PostgreSQL driver
)

// =========================================================================
// Core Interfaces
// =========================================================================

// Querier is an interface that abstracts database operations.
// It is satisfied by both *sql.DB (single operations on the pool) and *sql.Tx
// (operations within a transaction).
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// =========================================================================
// Connection Management
// =========================================================================

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int           // Maximum number of open connections to the database
	MaxIdleConns    int           // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration // Maximum amount of time a connection may be idle
}

// DefaultConnectionConfig returns sensible defaults for connection pooling.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// ConnectionConfigFrom overlays non-zero pool settings from cfg on top of the defaults.
func ConnectionConfigFrom(pool config.Pool) ConnectionConfig {
	c := DefaultConnectionConfig()
	if pool.MaxOpenConns > 0 {
		c.MaxOpenConns = pool.MaxOpenConns
	}
	if pool.MaxIdleConns > 0 {
		c.MaxIdleConns = pool.MaxIdleConns
	}
	if pool.ConnMaxLifetime > 0 {
		c.ConnMaxLifetime = pool.ConnMaxLifetime
	}
	if pool.ConnMaxIdleTime > 0 {
		c.ConnMaxIdleTime = pool.ConnMaxIdleTime
	}
	return c
}

// URL builds a postgres:// connection URL. It is accepted both by lib/pq and by golang-migrate.
func URL(cfg config.Pg) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Dbname,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Connect establishes and verifies a connection to the PostgreSQL database.
// It configures the connection pool according to the provided settings and
// verifies connectivity with a ping operation.
func Connect(ctx context.Context, cfg config.Pg, connCfg ConnectionConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// =========================================================================
// Transaction Helpers
// =========================================================================

// WithTx executes a function within a database transaction.
// If the provided function returns an error, the transaction is rolled back.
// Otherwise, the transaction is committed. The deferred Rollback() is a no-op
// if the transaction has already been committed.
//
// Usage:
//
//	err := pg.WithTx(ctx, db, func(tx *sql.Tx) error {
//	    if err := someOperation(ctx, tx, data); err != nil {
//	        return err // Triggers rollback
//	    }
//	    return nil // Triggers commit
//	})
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // No-op if transaction is already committed

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// =========================================================================
// Error Classification
// =========================================================================

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

// ConstraintName returns the violated constraint, if err is a *pq.Error.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
