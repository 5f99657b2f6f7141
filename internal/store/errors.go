package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new user
	// fails because the email's unique constraint is violated. Uniqueness is
	// enforced by the database, not by a pre-check, so concurrent signups
	// with the same email cannot race past each other.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at most
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDatabaseUnavailable is returned (wrapped) when the database itself
	// cannot be reached, as detected by [IsUnavailable]. The HTTP layer maps
	// it to 503.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrVerificationNotSaved is returned when an INSERT of a verification
	// row completes without error but affects zero rows, meaning nothing was
	// actually persisted.
	ErrVerificationNotSaved = errors.New("verification was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan verification row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan verification rows")
)
