package validation

import "errors"

var (
	ErrEmptyName     = errors.New("name is required")
	ErrNameTooLong   = errors.New("name exceeds maximum length")
	ErrInvalidColor  = errors.New("color not allowed")
	ErrBatchTooLarge = errors.New("batch size exceeds maximum")
	ErrEmptyBatch    = errors.New("widgets is required")
)

type BatchValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *BatchValidationError) Error() string {
	return "batch validation failed"
}
