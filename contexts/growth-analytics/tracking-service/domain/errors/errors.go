package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownEvent   = errors.New("unknown event name")
)
