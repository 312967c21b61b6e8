package models

import "errors"

var (
	// ErrInvalidArgument marks a missing or blank required argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSourceUnavailable marks a text source that cannot be read.
	ErrSourceUnavailable = errors.New("source unavailable")
)
