package service

import "errors"

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means a required field was missing or empty after trimming.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials means the login attempt failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
