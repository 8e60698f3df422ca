package domain

import "errors"

// Validation errors, detected before any storage call
var (
	ErrMissingField            = errors.New("missing required field")
	ErrMissingConditionalField = errors.New("death date is required for survivors")
	ErrInvalidDateFormat       = errors.New("invalid date format, use DD/MM/YYYY")
	ErrInvalidDateOrder        = errors.New("death date cannot be before birth date")
	ErrInvalidStatus           = errors.New("status must be Retiree or Survivor")
	ErrFieldTooLong            = errors.New("field exceeds maximum length")
)

// Storage outcome errors
var (
	ErrDuplicateKey   = errors.New("national id already exists")
	ErrNotFound       = errors.New("member not found")
	ErrStorageFailure = errors.New("storage failure")
)

// Report errors
var (
	ErrEmptyReport     = errors.New("no data for this report")
	ErrUnknownReport   = errors.New("unknown report")
	ErrInvalidBirthday = errors.New("invalid birthday, use DD/MM")
)

// IsValidation reports whether err is one of the pre-storage validation errors
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrMissingConditionalField) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidDateOrder) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrFieldTooLong)
}
