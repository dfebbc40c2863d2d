package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTokenNotFound is returned when no ledger row matches the requested
	// token string (or no active row, for lookups restricted to active tokens).
	ErrTokenNotFound = errors.New("token was not found")

	// ErrTokenAlreadyExists is returned when a minted token string collides
	// with an existing ledger row.
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrNotFound is returned when a resource id does not exist.
	ErrNotFound = errors.New("resource was not found")

	// ErrPermissionDenied is returned when the caller is not allowed to see
	// or change a resource. It is the same for private and foreign resources.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAuthenticationRequired is returned by mutating operations invoked
	// without a caller identity.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidField is returned when a filter, sort, search or aggregate
	// refers to a field the resource schema does not expose.
	ErrInvalidField = errors.New("invalid field")

	// ErrPageOutOfRange is returned when the requested page starts beyond
	// the largest representable row offset.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrConflict is returned when a write violates a uniqueness constraint
	// of a resource (e.g. a duplicate short code).
	ErrConflict = errors.New("resource conflict")

	// ErrUnavailable is returned when the store could not answer in time or
	// the connection failed. It is retryable and never means "not found".
	ErrUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
