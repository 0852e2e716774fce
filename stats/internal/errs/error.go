package errs

import "errors"

var (
	ErrNotFound       = errors.New("stats not found")
	ErrDuplicateEvent = errors.New("duplicate event")
)
