package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrRequiredFields = errors.New("required fields missing")
	ErrPriceNotNumber = errors.New("price is not a number")
	ErrPriceNegative  = errors.New("price is negative")
	ErrEmptyLabel     = errors.New("label is empty")
)

// Kind classifies failures surfaced to console users.
type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindServer     Kind = "server"
	KindTransport  Kind = "transport"
	KindUnknown    Kind = "unknown"
)

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrRequiredFields) ||
		errors.Is(err, ErrPriceNotNumber) ||
		errors.Is(err, ErrPriceNegative) ||
		errors.Is(err, ErrEmptyLabel)
}
