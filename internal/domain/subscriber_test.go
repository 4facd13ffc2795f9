package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSubscriberName_Valid(t *testing.T) {
	for _, name := range []string{
		"Minh Hoang Tien",
		"Ursula K. Le Guin",
		"  padded  ", // trimming applies to the emptiness check only
		strings.Repeat("á", 256),
	} {
		if _, err := ParseSubscriberName(name); err != nil {
			t.Errorf("ParseSubscriberName(%q) = %v, want nil", name, err)
		}
	}
}

func TestParseSubscriberName_PreservesRawInput(t *testing.T) {
	raw := "  Minh Hoang  "
	n, err := ParseSubscriberName(raw)
	if err != nil {
		t.Fatalf("ParseSubscriberName: %v", err)
	}
	if n.String() != raw {
		t.Errorf("String() = %q, want raw input %q", n.String(), raw)
	}
}

func TestParseSubscriberName_EmptyOrWhitespace(t *testing.T) {
	for _, name := range []string{"", "    ", "\t\n"} {
		_, err := ParseSubscriberName(name)
		if !errors.Is(err, ErrNameEmpty) {
			t.Errorf("ParseSubscriberName(%q) = %v, want ErrNameEmpty", name, err)
		}
	}
}

func TestParseSubscriberName_GraphemeBoundary(t *testing.T) {
	// "ớ" is one grapheme cluster built from multiple code points; counting
	// runes or bytes would miscount it.
	if _, err := ParseSubscriberName(strings.Repeat("ớ", 256)); err != nil {
		t.Errorf("256 graphemes should be valid, got %v", err)
	}
	_, err := ParseSubscriberName(strings.Repeat("ớ", 257))
	if !errors.Is(err, ErrNameTooLong) {
		t.Errorf("257 graphemes: got %v, want ErrNameTooLong", err)
	}
}

func TestParseSubscriberName_ForbiddenChars(t *testing.T) {
	for _, c := range []string{"/", "(", ")", "<", ">", "[", "]", `\`, "{", "}"} {
		_, err := ParseSubscriberName("Jane " + c + " Doe")
		if !errors.Is(err, ErrNameForbiddenChars) {
			t.Errorf("name containing %q: got %v, want ErrNameForbiddenChars", c, err)
		}
	}
}

func TestParseSubscriberEmail_Valid(t *testing.T) {
	for _, email := range []string{
		"user@example.com",
		"minh.hoang+news@sub.example.org",
	} {
		e, err := ParseSubscriberEmail(email)
		if err != nil {
			t.Errorf("ParseSubscriberEmail(%q) = %v, want nil", email, err)
			continue
		}
		if e.String() != email {
			t.Errorf("String() = %q, want %q", e.String(), email)
		}
	}
}

func TestParseSubscriberEmail_Invalid(t *testing.T) {
	for _, email := range []string{
		"",
		"helloworld",              // no @
		"@helloworld.com",         // no local part
		"helloworld@",             // no domain
		"Jane <jane@example.com>", // display names are not bare addresses
		"two words@example.com",
	} {
		_, err := ParseSubscriberEmail(email)
		if !errors.Is(err, ErrEmailInvalid) {
			t.Errorf("ParseSubscriberEmail(%q) = %v, want ErrEmailInvalid", email, err)
		}
	}
}
