// Package postmark is the client for the transactional-email HTTP API used
// to deliver confirmation emails.
//
// The client sends exactly one request per call. Retry policy, if any,
// belongs to the caller: a confirmation email that fails to send leaves the
// subscriber pending and discoverable for a later attempt.
package postmark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ignite/newsletter/internal/domain"
)

// ErrTransport marks connection and timeout failures, as opposed to the
// remote service rejecting the request.
var ErrTransport = errors.New("email API transport failure")

// RemoteError is returned when the email API answers with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("email API rejected request (status %d): %s", e.StatusCode, e.Body)
}

// HTTPDoer is the interface for executing HTTP requests. *http.Client
// satisfies it; tests substitute their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds email API settings.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	ServerToken    string `yaml:"server_token"`
	SenderEmail    string `yaml:"sender_email"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured request timeout, defaulting to 10s.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Client is the email API client.
type Client struct {
	baseURL     string
	serverToken string
	sender      string
	httpClient  HTTPDoer
}

// NewClient creates an email API client with a bounded request timeout.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		serverToken: cfg.ServerToken,
		sender:      cfg.SenderEmail,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
	}
}

// SetHTTPClient sets a custom HTTP client (useful for testing).
func (c *Client) SetHTTPClient(client HTTPDoer) {
	c.httpClient = client
}

// sendEmailPayload is the wire format expected by the email API.
type sendEmailPayload struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// SendEmail posts a single email to {base_url}/email. It returns an error
// matching ErrTransport when the request never completes, and a *RemoteError
// when the service answers with a non-2xx status.
func (c *Client) SendEmail(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, textBody string) error {
	payload := sendEmailPayload{
		From:     c.sender,
		To:       to.String(),
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Some-Server-Token", c.serverToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RemoteError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}
