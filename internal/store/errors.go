package store

import (
	"errors"
	"fmt"
)

// ErrDataAccess is returned when the catalog cannot be queried: the
// connection could not be acquired, the statement failed, or the result set
// could not be read. Callers map it to a generic server error.
var ErrDataAccess = errors.New("data access failure")

// FailureKind classifies a data access failure for logging and metrics. It is
// never exposed to clients.
type FailureKind string

// Failure kinds.
const (
	KindConnection FailureKind = "connection"
	KindStatement  FailureKind = "statement"
	KindConstraint FailureKind = "constraint"
	KindTimeout    FailureKind = "timeout"
	KindCanceled   FailureKind = "canceled"
	KindUnknown    FailureKind = "unknown"
)

// QueryError is the concrete error returned by store implementations.
// It always matches ErrDataAccess with errors.Is.
type QueryError struct {
	Operation string      // The store operation that failed (e.g., "search_keyboards")
	Kind      FailureKind // Coarse classification of the cause
	Err       error       // Original driver error
}

// NewQueryError creates a new QueryError.
func NewQueryError(operation string, kind FailureKind, err error) *QueryError {
	return &QueryError{
		Operation: operation,
		Kind:      kind,
		Err:       err,
	}
}

// Error implements the error interface for QueryError.
func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s failed (%s): %v", ErrDataAccess, e.Operation, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s failed (%s)", ErrDataAccess, e.Operation, e.Kind)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDataAccess.
func (e *QueryError) Is(target error) bool {
	return target == ErrDataAccess
}

// IsDataAccessError checks if the error is, or wraps, a data access failure.
func IsDataAccessError(err error) bool {
	return errors.Is(err, ErrDataAccess)
}

// FailureKindOf returns the kind recorded in err, or KindUnknown.
func FailureKindOf(err error) FailureKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindUnknown
}
