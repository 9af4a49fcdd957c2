package seq

import (
	"errors"
)

var (
	// ErrInvalidOperation is returned when a node handle does not belong to the list it is passed to.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNilArgument is returned when a required node handle or predicate is nil.
	ErrNilArgument = errors.New("nil argument")
	// ErrOutOfRange is returned when an index is outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
)
