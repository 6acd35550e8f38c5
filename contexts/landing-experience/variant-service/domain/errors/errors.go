package errors

import "errors"

var (
	ErrUnknownVariant = errors.New("unknown variant")
)
