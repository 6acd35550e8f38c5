package errors

import "errors"

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrDuplicateEmail      = errors.New("email already on waitlist")
	ErrStoreUnavailable    = errors.New("waitlist store unavailable")
	ErrCheckoutUnavailable = errors.New("checkout unavailable")
)
