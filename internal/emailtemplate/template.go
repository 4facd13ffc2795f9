// Package emailtemplate renders the confirmation email sent to new
// subscribers. Templates use the Liquid language so copy changes don't
// require touching Go code.
package emailtemplate

import (
	"fmt"

	"github.com/osteele/liquid"
)

// ConfirmationSubject is the subject line of the opt-in confirmation email.
const ConfirmationSubject = "Welcome to our newsletter!"

const confirmationHTML = `<p>Hi {{ name | default: "there" }},</p>
<p>Welcome to our newsletter! Click <a href="{{ confirmation_link }}">here</a> to confirm your subscription.</p>
<p>If you didn't sign up, you can safely ignore this email.</p>`

const confirmationText = `Hi {{ name | default: "there" }},

Welcome to our newsletter! Visit {{ confirmation_link }} to confirm your subscription.

If you didn't sign up, you can safely ignore this email.`

// Renderer renders email bodies from pre-parsed Liquid templates.
type Renderer struct {
	html *liquid.Template
	text *liquid.Template
}

// NewRenderer parses the built-in templates once. A parse failure here is a
// programming error in the template source, caught at startup rather than on
// the first enrollment.
func NewRenderer() (*Renderer, error) {
	engine := liquid.NewEngine()
	engine.RegisterFilter("default", func(value any, fallback string) any {
		if value == nil || fmt.Sprintf("%v", value) == "" {
			return fallback
		}
		return value
	})

	html, err := engine.ParseString(confirmationHTML)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	text, err := engine.ParseString(confirmationText)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Confirmation renders the HTML and plain-text bodies for a confirmation
// email addressed to name, embedding confirmationLink.
func (r *Renderer) Confirmation(name, confirmationLink string) (htmlBody, textBody string, err error) {
	bindings := map[string]any{
		"name":              name,
		"confirmation_link": confirmationLink,
	}
	htmlBody, err = r.html.RenderString(bindings)
	if err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	textBody, err = r.text.RenderString(bindings)
	if err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return htmlBody, textBody, nil
}
