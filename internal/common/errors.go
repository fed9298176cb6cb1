package common

import "errors"

var (
	// repository specific errors
	ErrNotFound = errors.New("not found")

	// service specific errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("login required")
	ErrForbidden          = errors.New("permission denied")
)
