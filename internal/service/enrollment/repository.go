package enrollment

import (
	"context"

	"github.com/ignite/newsletter/internal/domain"
)

// Repository defines the persistence contract for enrollment.
type Repository interface {
	// InsertPendingSubscriber atomically inserts a subscriber row with
	// status pending and a token row linking token to it, returning the
	// generated subscriber id. Either both rows exist afterwards or
	// neither does. Returns ErrTokenConflict if the token is already
	// taken and an error wrapping ErrStoreUnavailable on transport
	// failure.
	InsertPendingSubscriber(ctx context.Context, sub domain.NewSubscriber, token string) (string, error)
}
