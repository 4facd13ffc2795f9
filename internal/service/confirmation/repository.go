package confirmation

import "context"

// Repository defines the persistence contract for confirmation.
type Repository interface {
	// ResolveToken returns the subscriber id the token was issued for, or
	// ErrUnknownToken if no such token exists.
	ResolveToken(ctx context.Context, token string) (string, error)

	// MarkConfirmed transitions the subscriber to confirmed. Idempotent:
	// confirming an already-confirmed subscriber is not an error.
	MarkConfirmed(ctx context.Context, subscriberID string) error
}
