package enrollment

import (
	"context"

	"github.com/ignite/newsletter/internal/domain"
)

// Notifier sends the confirmation email. Implementations perform a single
// attempt with a bounded timeout; retries are out of scope here.
type Notifier interface {
	SendEmail(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, textBody string) error
}
