package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/migrations"
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB together with its SQL dialect, a squirrel statement
// builder using the dialect's placeholder format, and the per-query timeout
// applied to every store round-trip.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	queryTimeout       time.Duration
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. dialect is one of
// [migrations.DialectPostgres] or [migrations.DialectSQLite].
func NewDB(conn *sql.DB, dialect string, queryTimeout time.Duration, log *logger.Logger) *DB {
	db := &DB{
		DB:           conn,
		dialect:      dialect,
		queryTimeout: queryTimeout,
		logger:       log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns the SQL dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// withTimeout bounds ctx by the configured query timeout.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// likeEscaper makes the LIKE wildcards of a search term literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// contains returns a case-insensitive substring match of term in column.
// Wildcards in term match only themselves.
func (db *DB) contains(column, term string) sq.Sqlizer {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	if db.dialect == migrations.DialectPostgres {
		return sq.Expr(column+` ILIKE ? ESCAPE '\'`, pattern)
	}
	// LIKE is case-insensitive for ASCII in SQLite
	return sq.Expr(column+` LIKE ? ESCAPE '\'`, pattern)
}

// classify converts a driver error into the store error vocabulary:
// timeouts, cancellations, broken or refused connections and retryable
// driver codes become [ErrUnavailable]; everything else is wrapped unchanged.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.As(err, new(net.Error)) ||
		db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
