package errors

import "errors"

var (
	// ErrRecordNotFound indicates that no premium record exists for the email
	ErrRecordNotFound = errors.New("premium record not found")

	// ErrStoreUnavailable indicates that the premium store could not be reached
	ErrStoreUnavailable = errors.New("premium store unavailable")
)
