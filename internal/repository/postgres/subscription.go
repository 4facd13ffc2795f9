// Package postgres implements the service repository interfaces against
// PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/service/confirmation"
	"github.com/ignite/newsletter/internal/service/enrollment"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

// SubscriptionRepo implements enrollment.Repository and
// confirmation.Repository against PostgreSQL.
type SubscriptionRepo struct{ db *sql.DB }

// NewSubscriptionRepo creates a Postgres-backed subscription repository.
func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

// InsertPendingSubscriber inserts the subscriber row and its token row in a
// single transaction. Any failure rolls back both inserts, so no concurrent
// reader can ever observe a subscriber without a token or vice versa.
func (r *SubscriptionRepo) InsertPendingSubscriber(ctx context.Context, sub domain.NewSubscriber, token string) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%w: begin: %v", enrollment.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, email, subscribed_at, status)
		VALUES ($1, $2, $3, NOW(), $4)
	`, id, sub.Name.String(), sub.Email.String(), domain.SubscriberPending)
	if err != nil {
		return "", fmt.Errorf("%w: insert subscription: %v", enrollment.ErrStoreUnavailable, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)
	`, token, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return "", enrollment.ErrTokenConflict
		}
		return "", fmt.Errorf("%w: insert token: %v", enrollment.ErrStoreUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%w: commit: %v", enrollment.ErrStoreUnavailable, err)
	}
	return id, nil
}

// ResolveToken returns the subscriber id a token was issued for.
func (r *SubscriptionRepo) ResolveToken(ctx context.Context, token string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1`,
		token,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", confirmation.ErrUnknownToken
	}
	if err != nil {
		return "", fmt.Errorf("resolve token: %w", err)
	}
	return id, nil
}

// MarkConfirmed flips the subscriber to confirmed. The update matches
// already-confirmed rows too, so repeating it is harmless.
func (r *SubscriptionRepo) MarkConfirmed(ctx context.Context, subscriberID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET status = $1 WHERE id = $2`,
		domain.SubscriberConfirmed, subscriberID,
	)
	if err != nil {
		return fmt.Errorf("mark confirmed: %w", err)
	}
	return nil
}
