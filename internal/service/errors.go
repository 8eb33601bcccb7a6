package service

import "errors"

// Outcomes the transport layer maps onto HTTP statuses. Store faults come
// back wrapped and match none of these.
var (
	// ErrMissingFields means a required registration field was empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmailTaken means a registration already exists for the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound means no registration matches the given key.
	ErrNotFound = errors.New("registration not found")
	// ErrInvalidID means the id is not a valid record identifier.
	ErrInvalidID = errors.New("invalid registration id")
)
