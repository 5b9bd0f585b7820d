package domain

import "errors"

var (
	// ErrMissingCredentials is returned when the login body lacks a
	// username or password.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials is returned when the username/digest pair
	// matches no stored principal.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized covers every bearer-token failure: missing header,
	// malformed token, bad signature, expired payload.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTooManyAttempts is returned when the login rate limit trips.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrInvalidTable is returned for any table name outside the whitelist.
	ErrInvalidTable = errors.New("invalid table")
	// ErrNotFound is returned when a single-record fetch matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrTitleRequired is returned when a create payload carries no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrEmptyUpdate is returned when an update payload carries no
	// recognized column.
	ErrEmptyUpdate = errors.New("no fields to update")
)
