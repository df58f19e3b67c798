// Package refund dispatches refunds to the payment provider a booking
// was paid with.
package refund

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

// Transport is the backend surface the providers call.
type Transport interface {
	RefundPayPal(ctx context.Context, captureID string, amount domain.Amount, reason string) (string, error)
	RefundMollie(ctx context.Context, bookingID string, amount domain.Amount, reason string) (string, error)
}

// Provider refunds through one payment provider.
type Provider interface {
	Method() domain.PaymentMethod
	Refund(ctx context.Context, req domain.RefundRequest) (*domain.RefundOutcome, error)
}

type PayPal struct {
	transport Transport
}

func NewPayPal(t Transport) *PayPal {
	return &PayPal{transport: t}
}

func (p *PayPal) Method() domain.PaymentMethod { return domain.PaymentMethodPayPal }

// Refund sends the PayPal capture id; PayPal does not know our booking ids.
func (p *PayPal) Refund(ctx context.Context, req domain.RefundRequest) (*domain.RefundOutcome, error) {
	if req.CaptureID == "" {
		return nil, fmt.Errorf("%w: booking has no capture id", domain.ErrValidation)
	}
	msg, err := p.transport.RefundPayPal(ctx, req.CaptureID, req.Amount, req.Reason)
	if err != nil {
		return nil, fmt.Errorf("paypal refund: %w", err)
	}
	return &domain.RefundOutcome{Method: domain.PaymentMethodPayPal, Message: msg}, nil
}

type Mollie struct {
	transport Transport
}

func NewMollie(t Transport) *Mollie {
	return &Mollie{transport: t}
}

func (m *Mollie) Method() domain.PaymentMethod { return domain.PaymentMethodMollie }

func (m *Mollie) Refund(ctx context.Context, req domain.RefundRequest) (*domain.RefundOutcome, error) {
	msg, err := m.transport.RefundMollie(ctx, req.BookingID, req.Amount, req.Reason)
	if err != nil {
		return nil, fmt.Errorf("mollie refund: %w", err)
	}
	return &domain.RefundOutcome{Method: domain.PaymentMethodMollie, Message: msg}, nil
}

// Registry selects a provider by the payment method stored on a booking.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[key(p.Method())] = p
	}
	return r
}

// NewDefaultRegistry wires PayPal and Mollie over the same transport.
func NewDefaultRegistry(t Transport) *Registry {
	return NewRegistry(NewPayPal(t), NewMollie(t))
}

func key(m domain.PaymentMethod) string {
	return strings.ToLower(strings.TrimSpace(string(m)))
}

func (r *Registry) For(m domain.PaymentMethod) (Provider, error) {
	p, ok := r.providers[key(m)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPaymentMethod, m)
	}
	return p, nil
}

// NewRequest builds the one-shot refund draft for b.
func NewRequest(b *domain.Booking, amount domain.Amount, reason string) domain.RefundRequest {
	return domain.RefundRequest{
		BookingID: b.ID,
		CaptureID: b.CaptureID,
		Method:    b.PaymentMethod,
		Amount:    amount,
		Reason:    strings.TrimSpace(reason),
	}
}

// Validate checks a draft against the booking it refunds.
func Validate(b *domain.Booking, req domain.RefundRequest) error {
	if b.Refunded() {
		return domain.ErrAlreadyRefunded
	}
	if req.Amount <= 0 || req.Reason == "" {
		return fmt.Errorf("%w: please fill in all required fields", domain.ErrValidation)
	}
	if b.TotalPrice > 0 && req.Amount > b.TotalPrice {
		return fmt.Errorf("%w: refund %s exceeds total %s", domain.ErrValidation, req.Amount, b.TotalPrice)
	}
	return nil
}

// Refund validates the draft and dispatches it by the booking's stored
// payment method.
func (r *Registry) Refund(ctx context.Context, b *domain.Booking, amount domain.Amount, reason string) (*domain.RefundOutcome, error) {
	req := NewRequest(b, amount, reason)
	if err := Validate(b, req); err != nil {
		return nil, err
	}
	p, err := r.For(req.Method)
	if err != nil {
		return nil, err
	}
	return p.Refund(ctx, req)
}
