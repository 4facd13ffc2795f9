package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// Validation errors for subscriber value objects.
var (
	ErrNameEmpty          = errors.New("subscriber name cannot be empty")
	ErrNameTooLong        = errors.New("subscriber name exceeds 256 characters")
	ErrNameForbiddenChars = errors.New("subscriber name contains forbidden characters")
	ErrEmailInvalid       = errors.New("invalid subscriber email")
)

// maxNameGraphemes is the upper bound on user-perceived characters in a name.
// Counted as Unicode grapheme clusters, not bytes or runes, so that a name
// like "å" (two code points) still counts as one character.
const maxNameGraphemes = 256

// forbiddenNameChars are rejected outright to keep names safe for HTML and
// email headers without any downstream escaping dependency.
const forbiddenNameChars = `/()<>[]\{}`

// SubscriberName is a validated subscriber display name.
//
// ParseSubscriberName is the only way to obtain a SubscriberName, so any
// instance in the system satisfies the validation rules.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw input and returns a SubscriberName.
// The stored value is the raw input; trimming is applied only for the
// emptiness check.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, ErrNameEmpty
	}
	if uniseg.GraphemeClusterCount(raw) > maxNameGraphemes {
		return SubscriberName{}, ErrNameTooLong
	}
	if strings.ContainsAny(raw, forbiddenNameChars) {
		return SubscriberName{}, ErrNameForbiddenChars
	}
	return SubscriberName{value: raw}, nil
}

// String returns the validated name.
func (n SubscriberName) String() string { return n.value }

// SubscriberEmail is a validated email address.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw input against RFC 5322 address grammar
// and returns a SubscriberEmail. Display names ("Jane <jane@example.com>")
// are rejected; only a bare address is accepted.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return SubscriberEmail{}, fmt.Errorf("%w: %q", ErrEmailInvalid, raw)
	}
	if addr.Name != "" || addr.Address != raw {
		return SubscriberEmail{}, fmt.Errorf("%w: %q", ErrEmailInvalid, raw)
	}
	return SubscriberEmail{value: raw}, nil
}

// String returns the validated address.
func (e SubscriberEmail) String() string { return e.value }

// NewSubscriber is a fully validated enrollment request. It can only be built
// from value objects, so an invalid form submission never produces one.
type NewSubscriber struct {
	Name  SubscriberName
	Email SubscriberEmail
}

// SubscriberStatus enumerates the opt-in lifecycle states of a subscriber.
type SubscriberStatus string

const (
	SubscriberPending   SubscriberStatus = "pending"
	SubscriberConfirmed SubscriberStatus = "confirmed"
)

// Subscriber is the persisted subscription record. A subscriber is created
// pending by enrollment and transitions to confirmed exactly once when its
// token is presented; it is never deleted or otherwise mutated.
type Subscriber struct {
	ID           string           `json:"id" db:"id"`
	Name         string           `json:"name" db:"name"`
	Email        string           `json:"email" db:"email"`
	SubscribedAt time.Time        `json:"subscribed_at" db:"subscribed_at"`
	Status       SubscriberStatus `json:"status" db:"status"`
}
