package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("Book not found")
	ErrInvalidID = errors.New("invalid id")
)

type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Cast to ObjectId failed for value %q at path \"_id\"", e.Value)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}
