package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by every layer. Adapters wrap these with fmt.Errorf("%w")
// to add context; callers classify with errors.Is.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrPaymentNotCompleted = errors.New("payment not completed")

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	ErrDuplicatePayment   = fmt.Errorf("%w: duplicate payment", ErrConflict)
	ErrInvalidTransition  = fmt.Errorf("%w: invalid status transition", ErrValidation)
)

// Validationf returns an ErrValidation wrapped with a formatted reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Kind names the taxonomy entry of err for clients.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDuplicatePayment):
		return "duplicate_payment"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrValidation):
		return "validation_failed"
	case errors.Is(err, ErrPaymentNotCompleted):
		return "payment_not_completed"
	}
	return "internal_error"
}
