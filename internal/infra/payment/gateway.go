// Package payment wraps the external payment processor behind a small
// gateway interface so the confirm flow can run against a mock in
// development and tests.
package payment

import (
	"context"
	"fmt"
	"sync"

	"doorserve/internal/pkg/config"
	"doorserve/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type Intent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       string
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, orderID uuid.UUID) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
}

// NewGateway selects the implementation from configuration. The choice
// is fixed at construction; nothing toggles it at request time.
func NewGateway(cfg config.PaymentConfig) Gateway {
	if cfg.UseMockGateway {
		return &mockGateway{intents: make(map[string]*Intent)}
	}
	return &stripeGateway{
		api:      client.New(cfg.StripeSecretKey, nil),
		currency: cfg.Currency,
	}
}

type stripeGateway struct {
	api      *client.API
	currency string
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, orderID uuid.UUID) (*Intent, error) {
	if currency == "" {
		currency = g.currency
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_id", orderID.String())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe payment intent creation failed")
	}
	return fromStripe(pi), nil
}

func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe payment intent retrieval failed")
	}
	return fromStripe(pi), nil
}

func fromStripe(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}
}

// mockGateway issues intents that always succeed. Intent ids carry a
// pi_mock_ prefix so they are recognizable in logs and fixtures.
type mockGateway struct {
	mu      sync.Mutex
	intents map[string]*Intent
}

func (g *mockGateway) CreateIntent(_ context.Context, amountCents int64, currency string, orderID uuid.UUID) (*Intent, error) {
	id := "pi_mock_" + uuid.NewString()
	intent := &Intent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%s", id, orderID.String()),
		AmountCents:  amountCents,
		Currency:     currency,
		Status:       string(stripe.PaymentIntentStatusSucceeded),
	}
	g.mu.Lock()
	g.intents[id] = intent
	g.mu.Unlock()
	return intent, nil
}

func (g *mockGateway) RetrieveIntent(_ context.Context, intentID string) (*Intent, error) {
	g.mu.Lock()
	intent, ok := g.intents[intentID]
	g.mu.Unlock()
	if ok {
		return intent, nil
	}
	return nil, errs.New("unknown payment intent " + intentID)
}
