package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the store how to treat a failed statement.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, rollbacks
	// caused by concurrency, a server that is starting up or a locked file.
	// They surface as [ErrUnavailable].
	Retryable

	// UniqueViolation marks a duplicate key. Repositories translate it to
	// their own conflict error.
	UniqueViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE code of a *pgconn.PgError. Failures to reach the server at all
// (*pgconn.ConnectError, timeouts, errors pgconn marks safe to retry) are
// Retryable.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.QueryCanceled:
		return Retryable
	}

	return NonRetryable
}

// isUniqueViolation reports whether err is a duplicate key in either
// supported dialect.
func isUniqueViolation(err error) bool {
	return NewPostgresErrorClassifier().Classify(err) == UniqueViolation ||
		NewSQLiteErrorClassifier().Classify(err) == UniqueViolation
}
