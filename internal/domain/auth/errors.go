package auth

import "errors"

var (
	// ErrEmailExists indicates a duplicate email address.
	ErrEmailExists = errors.New("email already exists")
	// ErrHandleExists indicates the handle is taken by another account.
	ErrHandleExists = errors.New("handle already exists")
)
