package workflow

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	"github.com/centrominero/gil/internal/repository"
)

// Error kinds surfaced by the engine. Callers branch on these with
// errors.Is; everything else is an internal store failure.
var (
	// ErrInvalidTransition: the requested state change is not legal from the
	// current state. Never retried.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrConflictingLoan: the operation would violate the one-active-loan-per-
	// equipment invariant or double-book a scheduled window.
	ErrConflictingLoan = errors.New("conflicting loan")
	// ErrNotFound: an identifier did not resolve.
	ErrNotFound = errors.New("not found")
	// ErrStoreConflict: concurrent modification or lock timeout in the store.
	// Safe to retry a bounded number of times.
	ErrStoreConflict = errors.New("store conflict")
	// ErrValidation: malformed input. Never retried.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidEquipmentState: the equipment cannot take part in the
	// operation in its current operational state.
	ErrInvalidEquipmentState = errors.New("invalid equipment state")
)

func invalidTransitionf(from repository.LoanStatus, op string) error {
	return fmt.Errorf("%w: cannot %s a loan in state %q", ErrInvalidTransition, op, from)
}

// classifyStoreErr maps low-level store failures onto the engine's error
// kinds. Serialization failures, deadlocks and lock timeouts are retryable;
// a unique violation on the loan code means a concurrent writer won.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
			return fmt.Errorf("%w: %s", ErrStoreConflict, pgErr.Message)
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflictingLoan, pgErr.Message)
		}
	}
	return err
}

// retryable reports whether the operation may be re-run after backoff.
func retryable(err error) bool {
	return errors.Is(err, ErrStoreConflict)
}
