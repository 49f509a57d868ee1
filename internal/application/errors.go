package application

import "errors"

var (
	// ErrNotFound covers record, attachment and file-join misses.
	ErrNotFound = errors.New("not found")
	// ErrNoPrimaryGroup means the caller's primary group membership could
	// not be resolved to exactly one row, so a record cannot be filed.
	ErrNoPrimaryGroup = errors.New("primary group cannot be resolved")
	// ErrInvalidCredentials hides whether the username or password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
