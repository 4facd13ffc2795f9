package enrollment

import "errors"

// Service-level errors. The HTTP boundary maps ErrInvalidInput to a client
// error and the other two to server errors.
var (
	ErrInvalidInput       = errors.New("invalid enrollment input")
	ErrPersistenceFailed  = errors.New("could not persist subscriber")
	ErrNotificationFailed = errors.New("could not send confirmation email")
)

// Repository contract errors, returned by implementations of Repository.
var (
	// ErrTokenConflict signals a primary-key collision on the confirmation
	// token. Vanishingly unlikely with 62^25 possible tokens, but handled
	// rather than panicked on.
	ErrTokenConflict = errors.New("subscription token already exists")

	// ErrStoreUnavailable signals a connectivity or transport failure
	// talking to the persistence store.
	ErrStoreUnavailable = errors.New("subscription store unavailable")
)
