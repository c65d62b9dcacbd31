package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// StripeProvider implements the IPaymentProvider contract against Stripe
// Checkout and its signed webhook events.
type StripeProvider struct {
	webhookSecret string
	config        usecasecontract.IConfigProvider
}

// NewStripeProvider configures the global Stripe key and returns the provider.
func NewStripeProvider(secretKey, webhookSecret string, config usecasecontract.IConfigProvider) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{
		webhookSecret: webhookSecret,
		config:        config,
	}
}

// CreateCheckoutSession creates a one-time payment session. The caller's uid
// travels in the session metadata so the completion event can be correlated
// back to the user.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, uid, customerEmail string) (*usecasecontract.CheckoutSession, error) {
	domain := p.config.GetSiteDomain()
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(customerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.config.GetPremiumCurrency()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.config.GetPremiumProductName()),
					},
					UnitAmount: stripe.Int64(p.config.GetPremiumUnitAmount()),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(domain + "/payment/success"),
		CancelURL:  stripe.String(domain + "/payment/cancel"),
	}
	params.Context = ctx
	params.AddMetadata("uid", uid)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &usecasecontract.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseCompletionEvent verifies the payload signature and extracts the
// checkout completion, or (nil, nil) for valid events of other types.
func (p *StripeProvider) ParseCompletionEvent(payload []byte, signatureHeader string) (*usecasecontract.CheckoutCompleted, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecasecontract.ErrInvalidSignature, err)
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return nil, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session event: %w", err)
	}

	return &usecasecontract.CheckoutCompleted{
		SessionID: cs.ID,
		UID:       cs.Metadata["uid"],
	}, nil
}

var _ usecasecontract.IPaymentProvider = (*StripeProvider)(nil)
