package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func auditWith(action domain.AuditAction, resourceID, actor, outcome string) interface{} {
	return mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == action &&
			e.ResourceID == resourceID &&
			e.Actor == actor &&
			e.Outcome == outcome &&
			e.ID != ""
	})
}

func TestBookingService_ListCustomers(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	svc := NewBookingService(backend, mocks.NewMockRefunder(t), nil, nil, newTestLogger(t))

	q := domain.PageQuery{Page: 3, Limit: 20, Search: "Smith"}
	page := &domain.BookingPage{Bookings: []domain.Booking{{ID: "b1"}}, TotalPages: 4}
	backend.EXPECT().ListCustomers(mock.Anything, q).Return(page, nil)

	got, err := svc.ListCustomers(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestBookingService_ListCustomers_Unauthorized(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	svc := NewBookingService(backend, mocks.NewMockRefunder(t), nil, nil, newTestLogger(t))

	backend.EXPECT().ListCustomers(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	_, err := svc.ListCustomers(context.Background(), domain.PageQuery{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Delete_Success(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	audit := mocks.NewMockAuditRepo(t)
	notifier := mocks.NewMockStaffNotifier(t)
	svc := NewBookingService(backend, mocks.NewMockRefunder(t), audit, notifier, newTestLogger(t))

	ctx := WithActor(context.Background(), "alice")
	backend.EXPECT().DeleteCustomer(mock.Anything, "b1").Return("Customer deleted", nil)
	audit.EXPECT().Create(mock.Anything, auditWith(domain.AuditDelete, "b1", "alice", domain.AuditOutcomeOK)).Return(nil)
	notifier.EXPECT().NotifyBookingDeleted(mock.Anything, "alice", "b1").Return()

	msg, err := svc.DeleteCustomer(ctx, "b1")

	require.NoError(t, err)
	assert.Equal(t, "Customer deleted", msg)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Delete_Failure(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	audit := mocks.NewMockAuditRepo(t)
	notifier := mocks.NewMockStaffNotifier(t)
	svc := NewBookingService(backend, mocks.NewMockRefunder(t), audit, notifier, newTestLogger(t))

	backend.EXPECT().DeleteCustomer(mock.Anything, "b1").Return("", domain.ErrBackend)
	audit.EXPECT().Create(mock.Anything, auditWith(domain.AuditDelete, "b1", defaultActor, domain.AuditOutcomeFailed)).Return(nil)

	_, err := svc.DeleteCustomer(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)

	time.Sleep(20 * time.Millisecond)
	notifier.AssertNotCalled(t, "NotifyBookingDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Delete_AuditFailureIgnored(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	audit := mocks.NewMockAuditRepo(t)
	svc := NewBookingService(backend, mocks.NewMockRefunder(t), audit, nil, newTestLogger(t))

	backend.EXPECT().DeleteCustomer(mock.Anything, "b1").Return("ok", nil)
	audit.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	msg, err := svc.DeleteCustomer(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
}

func TestBookingService_Refund_Success(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	refunder := mocks.NewMockRefunder(t)
	audit := mocks.NewMockAuditRepo(t)
	notifier := mocks.NewMockStaffNotifier(t)
	svc := NewBookingService(backend, refunder, audit, notifier, newTestLogger(t))

	b := &domain.Booking{ID: "b1", PaymentMethod: domain.PaymentMethodMollie, TotalPrice: 54.85}
	outcome := &domain.RefundOutcome{Method: domain.PaymentMethodMollie, Message: "Refund created"}

	refunder.EXPECT().Refund(mock.Anything, b, domain.Amount(20), "customer cancelled").Return(outcome, nil)
	audit.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditRefund &&
			e.Outcome == domain.AuditOutcomeOK &&
			assert.JSONEq(t, `{"payment_method":"Mollie","amount":20,"reason":"customer cancelled"}`, string(e.Details))
	})).Return(nil)
	notifier.EXPECT().NotifyRefunded(mock.Anything, defaultActor, b, outcome, domain.Amount(20)).Return()

	got, err := svc.Refund(context.Background(), b, 20, "customer cancelled")

	require.NoError(t, err)
	assert.Equal(t, outcome, got)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Refund_Rejected(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	refunder := mocks.NewMockRefunder(t)
	audit := mocks.NewMockAuditRepo(t)
	svc := NewBookingService(backend, refunder, audit, nil, newTestLogger(t))

	b := &domain.Booking{ID: "b1", PaymentMethod: "Stripe"}
	refunder.EXPECT().Refund(mock.Anything, b, domain.Amount(5), "r").Return(nil, domain.ErrUnsupportedPaymentMethod)
	audit.EXPECT().Create(mock.Anything, auditWith(domain.AuditRefund, "b1", defaultActor, domain.AuditOutcomeFailed)).Return(nil)

	_, err := svc.Refund(context.Background(), b, 5, "r")

	assert.ErrorIs(t, err, domain.ErrUnsupportedPaymentMethod)
}

func TestBookingService_RefundByID(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	refunder := mocks.NewMockRefunder(t)
	svc := NewBookingService(backend, refunder, nil, nil, newTestLogger(t))

	b := &domain.Booking{ID: "b1", PaymentMethod: domain.PaymentMethodPayPal, CaptureID: "cap-1"}
	backend.EXPECT().GetCustomer(mock.Anything, "b1").Return(b, nil)
	refunder.EXPECT().Refund(mock.Anything, b, domain.Amount(10), "r").
		Return(&domain.RefundOutcome{Method: domain.PaymentMethodPayPal}, nil)

	out, err := svc.RefundByID(context.Background(), "b1", 10, "r")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodPayPal, out.Method)
}

func TestBookingService_RefundByID_NotFound(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	refunder := mocks.NewMockRefunder(t)
	svc := NewBookingService(backend, refunder, nil, nil, newTestLogger(t))

	backend.EXPECT().GetCustomer(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.RefundByID(context.Background(), "missing", 10, "r")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_CreateByAdmin_AppliesDefaults(t *testing.T) {
	backend := mocks.NewMockBookingBackend(t)
	svc := NewBookingService(backend, mocks.NewMockRefunder(t), nil, nil, newTestLogger(t))

	backend.EXPECT().CreateCustomerByAdmin(mock.Anything, mock.MatchedBy(func(r *domain.BookingRequest) bool {
		return r.TotalPrice == domain.DefaultTotalPrice && r.PaymentMethod == domain.DefaultPaymentMethod
	})).Return(&domain.Booking{ID: "new"}, nil)

	b, err := svc.CreateByAdmin(context.Background(), &domain.BookingRequest{FirstName: "John"})

	require.NoError(t, err)
	assert.Equal(t, "new", b.ID)
}

func TestBookingService_History(t *testing.T) {
	audit := mocks.NewMockAuditRepo(t)
	svc := NewBookingService(mocks.NewMockBookingBackend(t), mocks.NewMockRefunder(t), audit, nil, newTestLogger(t))

	entries := []*domain.AuditEntry{{ID: "a1", Action: domain.AuditBlock}}
	audit.EXPECT().List(mock.Anything, 50).Return(entries, nil)

	got, err := svc.History(context.Background(), 50)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestBookingService_History_WithoutAudit(t *testing.T) {
	svc := NewBookingService(mocks.NewMockBookingBackend(t), mocks.NewMockRefunder(t), nil, nil, newTestLogger(t))

	got, err := svc.History(context.Background(), 50)

	require.NoError(t, err)
	assert.Empty(t, got)
}
