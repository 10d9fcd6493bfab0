package domain

import "errors"

// Sentinel errors for misuse of the Outcome and response APIs.
// They mark bugs in the calling code and are never rendered to clients.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)
