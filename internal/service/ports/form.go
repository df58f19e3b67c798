package ports

import (
	"context"
	"encoding/json"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type FormBackend interface {
	FormSlots(ctx context.Context, date string) ([]domain.Slot, error)
	DisabledDates(ctx context.Context, year, month int) ([]domain.DisabledDate, error)
	CheckBooking(ctx context.Context, req *domain.BookingRequest) (string, error)
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (json.RawMessage, error)
	CapturePayPal(ctx context.Context, details json.RawMessage) (json.RawMessage, error)
	CancelPayPal(ctx context.Context, bookingID string) error
	CancelMollie(ctx context.Context, bookingID string) error
	MollieStatus(ctx context.Context, bookingID string) (json.RawMessage, error)
	MollieWebhook(ctx context.Context, payload json.RawMessage) error
}

type RequestValidator interface {
	Validate(req *domain.BookingRequest) error
}

// DisabledDatesCache keeps the disabled days of a month.
type DisabledDatesCache interface {
	Get(ctx context.Context, year, month int) ([]string, bool, error)
	Set(ctx context.Context, year, month int, dates []string) error
}

// FormSessionStore keeps the dates a form session found to be full.
type FormSessionStore interface {
	Excluded(ctx context.Context, sessionID string) ([]string, error)
	Exclude(ctx context.Context, sessionID, date string) error
}
