package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/metrics"
	"github.com/stpnv0/MOTBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	backend  ports.BookingBackend
	refunder ports.Refunder
	audit    ports.AuditRepo
	notifier ports.StaffNotifier
	logger   logger.Logger
}

// NewBookingService builds the admin booking operations. audit and
// notifier may be nil.
func NewBookingService(
	backend ports.BookingBackend,
	refunder ports.Refunder,
	audit ports.AuditRepo,
	notifier ports.StaffNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		backend:  backend,
		refunder: refunder,
		audit:    audit,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) ListCustomers(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error) {
	page, err := s.backend.ListCustomers(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return page, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.backend.GetCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// DeleteCustomer deletes a booking on the backend and returns its
// confirmation message.
func (s *BookingService) DeleteCustomer(ctx context.Context, id string) (string, error) {
	msg, err := s.backend.DeleteCustomer(ctx, id)
	metrics.IncBookingDelete(metrics.Outcome(err))
	recordAudit(ctx, s.audit, s.logger, domain.AuditDelete, id, nil, err)
	if err != nil {
		return "", fmt.Errorf("delete booking: %w", err)
	}

	actor := ActorFrom(ctx)
	s.logger.Info("booking deleted",
		logger.String("booking_id", id),
		logger.String("actor", actor),
	)

	if s.notifier != nil {
		go s.notifier.NotifyBookingDeleted(context.WithoutCancel(ctx), actor, id)
	}

	return msg, nil
}

type refundDetails struct {
	Method string        `json:"payment_method"`
	Amount domain.Amount `json:"amount"`
	Reason string        `json:"reason"`
}

// Refund sends a refund for b through the provider it was paid with.
func (s *BookingService) Refund(ctx context.Context, b *domain.Booking, amount domain.Amount, reason string) (*domain.RefundOutcome, error) {
	outcome, err := s.refunder.Refund(ctx, b, amount, reason)
	metrics.IncRefund(string(b.PaymentMethod), metrics.Outcome(err))
	recordAudit(ctx, s.audit, s.logger, domain.AuditRefund, b.ID,
		refundDetails{Method: string(b.PaymentMethod), Amount: amount, Reason: reason}, err)
	if err != nil {
		return nil, fmt.Errorf("refund: %w", err)
	}

	actor := ActorFrom(ctx)
	s.logger.Info("booking refunded",
		logger.String("booking_id", b.ID),
		logger.String("payment_method", string(b.PaymentMethod)),
		logger.String("amount", amount.String()),
		logger.String("actor", actor),
	)

	if s.notifier != nil {
		go s.notifier.NotifyRefunded(context.WithoutCancel(ctx), actor, b, outcome, amount)
	}

	return outcome, nil
}

// RefundByID loads the booking first so the refund is dispatched on its
// stored payment method.
func (s *BookingService) RefundByID(ctx context.Context, id string, amount domain.Amount, reason string) (*domain.RefundOutcome, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Refund(ctx, b, amount, reason)
}

func (s *BookingService) Update(ctx context.Context, id string, fields json.RawMessage) (*domain.Booking, error) {
	b, err := s.backend.UpdateCustomer(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return b, nil
}

// CreateByAdmin books on behalf of a customer, bypassing payment.
func (s *BookingService) CreateByAdmin(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error) {
	req.ApplyDefaults()
	b, err := s.backend.CreateCustomerByAdmin(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created by staff",
		logger.String("booking_id", b.ID),
		logger.String("date", req.SelectedDate),
		logger.String("actor", ActorFrom(ctx)),
	)
	return b, nil
}

// History returns the latest audit entries, newest first.
func (s *BookingService) History(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if s.audit == nil {
		return nil, nil
	}
	entries, err := s.audit.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return entries, nil
}
