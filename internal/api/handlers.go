package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ignite/newsletter/internal/pkg/httputil"
	"github.com/ignite/newsletter/internal/service/confirmation"
	"github.com/ignite/newsletter/internal/service/enrollment"
)

// Enroller is the enrollment pipeline consumed by the subscribe handler.
type Enroller interface {
	Enroll(ctx context.Context, rawName, rawEmail string) error
}

// Confirmer is the confirmation pipeline consumed by the confirm handler.
type Confirmer interface {
	Confirm(ctx context.Context, token string) error
}

// Handlers holds the HTTP handlers for the newsletter API.
type Handlers struct {
	enroller  Enroller
	confirmer Confirmer
}

// NewHandlers creates the API handlers.
func NewHandlers(enroller Enroller, confirmer Confirmer) *Handlers {
	return &Handlers{enroller: enroller, confirmer: confirmer}
}

type subscribeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HandleSubscribe enrolls a new subscriber. Accepts an HTML form submission
// (application/x-www-form-urlencoded) or a JSON body with the same fields.
//
//	POST /subscriptions
func (h *Handlers) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if !httputil.Decode(w, r, &req) {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "invalid form body")
			return
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
	}

	err := h.enroller.Enroll(r.Context(), req.Name, req.Email)
	switch {
	case err == nil:
		httputil.OK(w)
	case errors.Is(err, enrollment.ErrInvalidInput):
		httputil.BadRequest(w, "invalid name or email")
	default:
		httputil.InternalError(w, err)
	}
}

// HandleConfirm confirms a pending subscription by its token.
//
//	GET /subscriptions/confirm?subscription_token=...
func (h *Handlers) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("subscription_token")
	if token == "" {
		httputil.BadRequest(w, "subscription_token is required")
		return
	}

	err := h.confirmer.Confirm(r.Context(), token)
	switch {
	case err == nil:
		httputil.OK(w)
	case errors.Is(err, confirmation.ErrUnknownToken):
		httputil.NotFound(w, "unknown subscription token")
	default:
		httputil.InternalError(w, err)
	}
}
