package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the addressed row does not exist (or does
	// not belong to the addressed inventory).
	ErrNotFound = errors.New("record not found")

	// ErrVersionConflict is returned when a compare-and-swap write finds a
	// stored version different from the expected one. Nothing is written.
	ErrVersionConflict = errors.New("version conflict")

	// ErrGrantAlreadyExists is returned when the grant pair is already stored.
	ErrGrantAlreadyExists = errors.New("user already has write access")

	// ErrInvalidReference is returned when a write names a missing category
	// or inventory.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrBlobNotFound is returned when a blob key does not resolve to a file.
	ErrBlobNotFound = errors.New("blob not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// ConflictError is the typed result of a failed compare-and-swap. It
// matches [ErrVersionConflict] with errors.Is.
type ConflictError struct {
	ID              int64
	ExpectedVersion int64
	// CurrentVersion is the version the write observed. A concurrent
	// commit may have moved the stored version past it, so it is only
	// reported, never used to retry.
	CurrentVersion int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict on %d: expected %d, observed %d", e.ID, e.ExpectedVersion, e.CurrentVersion)
}

// Is makes errors.Is(err, ErrVersionConflict) true.
func (e *ConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// AsConflict extracts the conflict details from err.
func AsConflict(err error) (*ConflictError, bool) {
	var c *ConflictError
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}
