package ports

import (
	"context"
	"encoding/json"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type BookingBackend interface {
	ListCustomers(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error)
	GetCustomer(ctx context.Context, id string) (*domain.Booking, error)
	DeleteCustomer(ctx context.Context, id string) (string, error)
	UpdateCustomer(ctx context.Context, id string, fields json.RawMessage) (*domain.Booking, error)
	CreateCustomerByAdmin(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error)
}

type Refunder interface {
	Refund(ctx context.Context, b *domain.Booking, amount domain.Amount, reason string) (*domain.RefundOutcome, error)
}
