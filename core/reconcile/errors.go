package reconcile

import "errors"

var (
	// ErrSourceAbsent marks a source that was not provided at all.
	ErrSourceAbsent = errors.New("source absent")
	// ErrFieldConflict is returned when a join would overwrite a field that
	// is already declared on the left side.
	ErrFieldConflict = errors.New("field conflict")
	// ErrMissingKey is returned when a relation lacks its join key field.
	ErrMissingKey = errors.New("missing join key")
	// ErrInvalidJoinMode is returned by ParseJoinMode.
	ErrInvalidJoinMode = errors.New("invalid join mode")
)
