package dataobj

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch matches every *TypeMismatchError via errors.Is.
var ErrTypeMismatch = errors.New("value is not an array")

// TypeMismatchError reports a key whose stored value is neither absent nor a
// []any.
type TypeMismatchError struct {
	Key   string
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value at %q is not an array (got %T)", e.Key, e.Value)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
