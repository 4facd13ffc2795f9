package confirmation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ignite/newsletter/internal/metrics"
	"github.com/ignite/newsletter/internal/pkg/logger"
)

// Service implements confirmation business logic. Safe for concurrent use.
type Service struct {
	repo    Repository
	metrics *metrics.Metrics
}

// NewService creates a confirmation service backed by the given repository.
func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// Confirm resolves the token and marks its subscriber confirmed.
func (s *Service) Confirm(ctx context.Context, token string) error {
	id, err := s.repo.ResolveToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUnknownToken) {
			s.metrics.ObserveConfirmation(metrics.OutcomeUnknownToken)
			return err
		}
		s.metrics.ObserveConfirmation(metrics.OutcomeStoreFailed)
		return fmt.Errorf("resolve token: %w", err)
	}

	if err := s.repo.MarkConfirmed(ctx, id); err != nil {
		s.metrics.ObserveConfirmation(metrics.OutcomeStoreFailed)
		return fmt.Errorf("mark confirmed: %w", err)
	}

	logger.Info("subscriber confirmed", "subscriber_id", id)
	s.metrics.ObserveConfirmation(metrics.OutcomeSuccess)
	return nil
}
