package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stpnv0/MOTBooker/internal/bookingform"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type formMocks struct {
	backend   *mocks.MockFormBackend
	validator *mocks.MockRequestValidator
	cache     *mocks.MockDisabledDatesCache
	sessions  *mocks.MockFormSessionStore
}

func newFormService(t *testing.T) (*FormService, formMocks) {
	m := formMocks{
		backend:   mocks.NewMockFormBackend(t),
		validator: mocks.NewMockRequestValidator(t),
		cache:     mocks.NewMockDisabledDatesCache(t),
		sessions:  mocks.NewMockFormSessionStore(t),
	}
	return NewFormService(m.backend, m.validator, m.cache, m.sessions, newTestLogger(t)), m
}

func TestFormService_SelectDate_NoSlotsExcludesDate(t *testing.T) {
	svc, m := newFormService(t)

	m.backend.EXPECT().FormSlots(mock.Anything, "2024-05-04").Return([]domain.Slot{
		{Time: "09:00", Status: domain.SlotBooked},
		{Time: "10:00", Status: domain.SlotBlocked},
	}, nil)
	m.sessions.EXPECT().Exclude(mock.Anything, "sess-1", "2024-05-04").Return(nil)
	m.sessions.EXPECT().Excluded(mock.Anything, "sess-1").Return([]string{"2024-05-02", "2024-05-04"}, nil)

	sel, err := svc.SelectDate(context.Background(), "sess-1", "2024-05-04")

	require.NoError(t, err)
	assert.Empty(t, sel.Slots)
	assert.Equal(t, bookingform.NoSlotsWarning, sel.Warning)
	assert.Equal(t, []string{"2024-05-02", "2024-05-04"}, sel.Excluded)
}

func TestFormService_SelectDate_ExcludedEvenIfSessionWriteFails(t *testing.T) {
	svc, m := newFormService(t)

	m.backend.EXPECT().FormSlots(mock.Anything, "2024-05-04").Return(nil, nil)
	m.sessions.EXPECT().Exclude(mock.Anything, "sess-1", "2024-05-04").Return(errors.New("redis down"))
	m.sessions.EXPECT().Excluded(mock.Anything, "sess-1").Return(nil, errors.New("redis down"))

	sel, err := svc.SelectDate(context.Background(), "sess-1", "2024-05-04")

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-04"}, sel.Excluded)
}

func TestFormService_SelectDate_KeepsAvailableTimes(t *testing.T) {
	svc, m := newFormService(t)

	m.backend.EXPECT().FormSlots(mock.Anything, "2024-05-01").Return([]domain.Slot{
		{Time: "09:00", Status: domain.SlotAvailable},
		{Time: "10:00", Status: domain.SlotBooked},
		{Time: "11:00", Status: domain.SlotAvailable},
	}, nil)
	m.sessions.EXPECT().Excluded(mock.Anything, "sess-1").Return(nil, nil)

	sel, err := svc.SelectDate(context.Background(), "sess-1", "2024-05-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, sel.Slots)
	assert.Empty(t, sel.Warning)
	assert.Empty(t, sel.Excluded)
}

func TestFormService_SelectDate_BackendError(t *testing.T) {
	svc, m := newFormService(t)

	m.backend.EXPECT().FormSlots(mock.Anything, "2024-05-01").Return(nil, domain.ErrBackend)

	_, err := svc.SelectDate(context.Background(), "sess-1", "2024-05-01")

	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestFormService_ChangeMonth_CacheHit(t *testing.T) {
	svc, m := newFormService(t)

	m.cache.EXPECT().Get(mock.Anything, 2024, 5).Return([]string{"2024-05-06", "2024-05-01"}, true, nil)
	m.sessions.EXPECT().Excluded(mock.Anything, "sess-1").Return([]string{"2024-05-04"}, nil)

	dates, err := svc.ChangeMonth(context.Background(), "sess-1", 2024, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-05-04", "2024-05-06"}, dates)
}

func TestFormService_ChangeMonth_CacheMissFetchesAndStores(t *testing.T) {
	svc, m := newFormService(t)

	m.cache.EXPECT().Get(mock.Anything, 2024, 6).Return(nil, false, nil)
	m.backend.EXPECT().DisabledDates(mock.Anything, 2024, 6).Return([]domain.DisabledDate{
		{Date: "2024-06-02"}, {Date: "2024-06-09"},
	}, nil)
	m.cache.EXPECT().Set(mock.Anything, 2024, 6, []string{"2024-06-02", "2024-06-09"}).Return(nil)

	dates, err := svc.ChangeMonth(context.Background(), "", 2024, 6)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-02", "2024-06-09"}, dates)
}

func TestFormService_ChangeMonth_CacheErrorFallsBack(t *testing.T) {
	svc, m := newFormService(t)

	m.cache.EXPECT().Get(mock.Anything, 2024, 6).Return(nil, false, errors.New("redis down"))
	m.backend.EXPECT().DisabledDates(mock.Anything, 2024, 6).Return(nil, nil)
	m.cache.EXPECT().Set(mock.Anything, 2024, 6, []string{}).Return(errors.New("redis down"))

	dates, err := svc.ChangeMonth(context.Background(), "", 2024, 6)

	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFormService_ChangeMonth_InvalidMonth(t *testing.T) {
	svc, _ := newFormService(t)

	_, err := svc.ChangeMonth(context.Background(), "", 2024, 13)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFormService_Submit_InvalidNeverReachesBackend(t *testing.T) {
	svc, m := newFormService(t)

	fe := bookingform.FieldErrors{"email": "Email is required"}
	m.validator.EXPECT().Validate(mock.Anything).Return(fe)

	res, err := svc.Submit(context.Background(), &domain.BookingRequest{})

	assert.Nil(t, res)
	var got bookingform.FieldErrors
	require.ErrorAs(t, err, &got)
	assert.Equal(t, fe, got)
}

func TestFormService_Submit_Verified(t *testing.T) {
	svc, m := newFormService(t)

	req := &domain.BookingRequest{FirstName: "John"}
	m.validator.EXPECT().Validate(req).Return(nil)
	m.backend.EXPECT().CheckBooking(mock.Anything, req).Return("", nil)

	res, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, res.PaymentStep)
	assert.Equal(t, verifiedMessage, res.Message)
	assert.Equal(t, domain.DefaultTotalPrice, req.TotalPrice)
	assert.Equal(t, domain.DefaultPaymentMethod, req.PaymentMethod)
}

func TestFormService_Submit_Rejected(t *testing.T) {
	svc, m := newFormService(t)

	m.validator.EXPECT().Validate(mock.Anything).Return(nil)
	m.backend.EXPECT().CheckBooking(mock.Anything, mock.Anything).Return("", domain.ErrBackend)

	res, err := svc.Submit(context.Background(), &domain.BookingRequest{})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrVerificationFailed)
	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestFormService_Submit_RealValidator(t *testing.T) {
	backend := mocks.NewMockFormBackend(t)
	svc := NewFormService(backend, bookingform.NewValidator(), mocks.NewMockDisabledDatesCache(t), mocks.NewMockFormSessionStore(t), newTestLogger(t))

	_, err := svc.Submit(context.Background(), &domain.BookingRequest{FirstName: "John"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFormService_CancelPayment(t *testing.T) {
	svc, m := newFormService(t)

	m.backend.EXPECT().CancelMollie(mock.Anything, "b1").Return(nil)
	m.backend.EXPECT().CancelPayPal(mock.Anything, "b2").Return(nil)

	require.NoError(t, svc.CancelPayment(context.Background(), "mollie", "b1"))
	require.NoError(t, svc.CancelPayment(context.Background(), domain.PaymentMethodPayPal, "b2"))
	assert.ErrorIs(t, svc.CancelPayment(context.Background(), "Stripe", "b3"), domain.ErrUnsupportedPaymentMethod)
}

func TestFormService_Create(t *testing.T) {
	svc, m := newFormService(t)

	req := &domain.BookingRequest{FirstName: "John", PaymentMethod: "Mollie"}
	m.validator.EXPECT().Validate(req).Return(nil)
	m.backend.EXPECT().CreateBooking(mock.Anything, req).Return(json.RawMessage(`{"checkoutUrl":"https://pay"}`), nil)

	data, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.JSONEq(t, `{"checkoutUrl":"https://pay"}`, string(data))
	assert.Equal(t, "Mollie", req.PaymentMethod)
}
