package enrollment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/emailtemplate"
	"github.com/ignite/newsletter/internal/metrics"
	"github.com/ignite/newsletter/internal/pkg/logger"
	"github.com/ignite/newsletter/internal/pkg/token"
)

// Service implements the enrollment pipeline. It holds no per-request state
// and is safe for concurrent use.
type Service struct {
	repo      Repository
	notifier  Notifier
	templates *emailtemplate.Renderer
	metrics   *metrics.Metrics
	baseURL   string
}

// NewService creates an enrollment service. baseURL is the public base URL
// of this service, used to build confirmation links.
func NewService(repo Repository, notifier Notifier, templates *emailtemplate.Renderer, m *metrics.Metrics, baseURL string) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		templates: templates,
		metrics:   m,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Enroll validates the raw form input, persists a pending subscriber with a
// fresh confirmation token, and emails the confirmation link.
func (s *Service) Enroll(ctx context.Context, rawName, rawEmail string) error {
	name, err := domain.ParseSubscriberName(rawName)
	if err != nil {
		s.metrics.ObserveEnrollment(metrics.OutcomeInvalidInput)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	email, err := domain.ParseSubscriberEmail(rawEmail)
	if err != nil {
		s.metrics.ObserveEnrollment(metrics.OutcomeInvalidInput)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	sub := domain.NewSubscriber{Name: name, Email: email}

	tok := token.Generate()

	id, err := s.repo.InsertPendingSubscriber(ctx, sub, tok)
	if err != nil {
		logger.Error("subscriber insert failed", "error", err, "subscriber_email", email.String())
		s.metrics.ObserveEnrollment(metrics.OutcomePersistenceFailed)
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	link := s.confirmationLink(tok)
	htmlBody, textBody, err := s.templates.Confirmation(name.String(), link)
	if err != nil {
		logger.Error("confirmation email render failed", "error", err, "subscriber_id", id)
		s.metrics.ObserveEnrollment(metrics.OutcomeNotificationFailed)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	start := time.Now()
	if err := s.notifier.SendEmail(ctx, email, emailtemplate.ConfirmationSubject, htmlBody, textBody); err != nil {
		// The pending row stays in place so the enrollment remains
		// confirmable once the email problem is resolved.
		logger.Error("confirmation email send failed", "error", err, "subscriber_id", id)
		s.metrics.ObserveEnrollment(metrics.OutcomeNotificationFailed)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	s.metrics.ObserveEmailSend(start)

	logger.Info("subscriber enrolled", "subscriber_id", id, "subscriber_email", email.String())
	s.metrics.ObserveEnrollment(metrics.OutcomeSuccess)
	return nil
}

func (s *Service) confirmationLink(tok string) string {
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, url.QueryEscape(tok))
}
