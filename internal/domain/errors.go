package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrCarNotFound          = errors.New("car not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrRentalNotFound       = errors.New("rental not found")
	ErrReturnNotFound       = errors.New("return not found")
	ErrRepairNotFound       = errors.New("repair not found")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrCarUnavailable   = errors.New("car is not available")
	ErrRentalNotActive  = errors.New("rental is not active")
	ErrRepairNotOpen    = errors.New("repair is not open")
	ErrAlertResolved    = errors.New("alert is already resolved")
	ErrPlateExists      = errors.New("plate already registered")
	ErrEmailExists      = errors.New("email already registered")
	ErrClientInactive   = errors.New("client is not active")
)

// MissingField reports a required field that is absent or empty.
// Handlers translate anything wrapping ErrValidation into a 400.
func MissingField(field string) error {
	return fmt.Errorf("%w: missing required field %q", ErrValidation, field)
}

func InvalidField(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
