package errors

import "errors"

// requested entity is not found.
var ErrMissing = errors.New("missing")

// requested entity conflicts with existing one.
var ErrConflict = errors.New("conflict")
