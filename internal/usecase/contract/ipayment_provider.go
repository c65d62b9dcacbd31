package contract

import (
	"context"
	"errors"
)

// ErrInvalidSignature is returned when a webhook payload fails signature
// verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// CheckoutSession is the provider session handed back to the caller.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutCompleted is the parsed, signature-verified completion event. UID is
// the opaque correlation id embedded in the session at creation time.
type CheckoutCompleted struct {
	SessionID string
	UID       string
}

// IPaymentProvider abstracts the external payment service: one-time checkout
// session creation and verification/parsing of its signed completion events.
type IPaymentProvider interface {
	// CreateCheckoutSession creates a one-time payment session correlated to
	// the caller's uid.
	CreateCheckoutSession(ctx context.Context, uid, customerEmail string) (*CheckoutSession, error)
	// ParseCompletionEvent verifies the event signature against the raw payload
	// and returns the completion data, or (nil, nil) when the event is valid
	// but not a checkout completion.
	ParseCompletionEvent(payload []byte, signatureHeader string) (*CheckoutCompleted, error)
}
