package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stpnv0/MOTBooker/internal/bookingform"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/metrics"
	"github.com/stpnv0/MOTBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const verifiedMessage = "Booking details verified!"

type FormService struct {
	backend   ports.FormBackend
	validator ports.RequestValidator
	cache     ports.DisabledDatesCache
	sessions  ports.FormSessionStore
	logger    logger.Logger
}

func NewFormService(
	backend ports.FormBackend,
	validator ports.RequestValidator,
	cache ports.DisabledDatesCache,
	sessions ports.FormSessionStore,
	logger logger.Logger,
) *FormService {
	return &FormService{
		backend:   backend,
		validator: validator,
		cache:     cache,
		sessions:  sessions,
		logger:    logger,
	}
}

// SelectDate loads the bookable times of date. A date with none is
// excluded for the rest of the session and the result carries a warning.
func (s *FormService) SelectDate(ctx context.Context, sessionID, date string) (*domain.DateSelection, error) {
	day, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	slots, err := s.backend.FormSlots(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("get form slots for %s: %w", day, err)
	}

	sel := &domain.DateSelection{Date: day, Slots: bookingform.AvailableTimes(slots)}
	if len(sel.Slots) == 0 {
		sel.Warning = bookingform.NoSlotsWarning
		if sessionID != "" {
			if err = s.sessions.Exclude(ctx, sessionID, day); err != nil {
				s.logger.Warn("failed to store excluded date",
					logger.String("date", day),
					logger.String("error", err.Error()),
				)
			}
		}
	}

	set := bookingform.NewExclusionSet(s.excluded(ctx, sessionID)...)
	if len(sel.Slots) == 0 {
		set.Add(day)
	}
	sel.Excluded = set.Sorted()

	return sel, nil
}

// ChangeMonth returns the dates the picker must not offer while showing
// month (1-12) of year.
func (s *FormService) ChangeMonth(ctx context.Context, sessionID string, year, month int) ([]string, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: month %d/%d", domain.ErrValidation, month, year)
	}

	dates, err := s.disabledDates(ctx, year, month)
	if err != nil {
		return nil, err
	}

	set := bookingform.NewExclusionSet(dates...)
	set.Add(s.excluded(ctx, sessionID)...)
	return set.Sorted(), nil
}

func (s *FormService) disabledDates(ctx context.Context, year, month int) ([]string, error) {
	dates, ok, err := s.cache.Get(ctx, year, month)
	if err != nil {
		s.logger.Warn("disabled dates cache read failed",
			logger.Int("year", year),
			logger.Int("month", month),
			logger.String("error", err.Error()),
		)
	}
	if ok {
		return dates, nil
	}
	return s.WarmMonth(ctx, year, month)
}

// WarmMonth fetches the disabled dates of a month from the backend and
// stores them in the cache.
func (s *FormService) WarmMonth(ctx context.Context, year, month int) ([]string, error) {
	raw, err := s.backend.DisabledDates(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("get disabled dates %d-%02d: %w", year, month, err)
	}

	dates := bookingform.DisabledDays(raw)
	if err = s.cache.Set(ctx, year, month, dates); err != nil {
		s.logger.Warn("disabled dates cache write failed",
			logger.Int("year", year),
			logger.Int("month", month),
			logger.String("error", err.Error()),
		)
	}
	return dates, nil
}

func (s *FormService) excluded(ctx context.Context, sessionID string) []string {
	if sessionID == "" {
		return nil
	}
	dates, err := s.sessions.Excluded(ctx, sessionID)
	if err != nil {
		s.logger.Warn("failed to read excluded dates",
			logger.String("error", err.Error()),
		)
		return nil
	}
	return dates
}

// Submit validates req and asks the backend to verify it. Only a
// verified request opens the payment step.
func (s *FormService) Submit(ctx context.Context, req *domain.BookingRequest) (*domain.SubmitResult, error) {
	req.ApplyDefaults()
	if err := s.validator.Validate(req); err != nil {
		metrics.IncFormSubmission("invalid")
		return nil, err
	}

	msg, err := s.backend.CheckBooking(ctx, req)
	metrics.IncFormSubmission(metrics.Outcome(err))
	if err != nil {
		s.logger.Info("booking verification rejected",
			logger.String("date", req.SelectedDate),
			logger.String("time_slot", req.SelectedTimeSlot),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrVerificationFailed, err)
	}

	if strings.TrimSpace(msg) == "" {
		msg = verifiedMessage
	}
	return &domain.SubmitResult{PaymentStep: true, Message: msg}, nil
}

// Create registers a verified booking ahead of payment.
func (s *FormService) Create(ctx context.Context, req *domain.BookingRequest) (json.RawMessage, error) {
	req.ApplyDefaults()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	data, err := s.backend.CreateBooking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("date", req.SelectedDate),
		logger.String("time_slot", req.SelectedTimeSlot),
		logger.String("payment_method", req.PaymentMethod),
	)
	return data, nil
}

func (s *FormService) CapturePayPal(ctx context.Context, details json.RawMessage) (json.RawMessage, error) {
	data, err := s.backend.CapturePayPal(ctx, details)
	if err != nil {
		return nil, fmt.Errorf("capture paypal payment: %w", err)
	}
	return data, nil
}

// CancelPayment releases a booking whose payment was abandoned.
func (s *FormService) CancelPayment(ctx context.Context, method domain.PaymentMethod, bookingID string) error {
	var err error
	switch strings.ToLower(string(method)) {
	case strings.ToLower(string(domain.PaymentMethodPayPal)):
		err = s.backend.CancelPayPal(ctx, bookingID)
	case strings.ToLower(string(domain.PaymentMethodMollie)):
		err = s.backend.CancelMollie(ctx, bookingID)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedPaymentMethod, method)
	}
	if err != nil {
		return fmt.Errorf("cancel %s payment: %w", method, err)
	}

	s.logger.Info("payment cancelled",
		logger.String("booking_id", bookingID),
		logger.String("payment_method", string(method)),
	)
	return nil
}

func (s *FormService) MollieStatus(ctx context.Context, bookingID string) (json.RawMessage, error) {
	data, err := s.backend.MollieStatus(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("mollie status: %w", err)
	}
	return data, nil
}

func (s *FormService) MollieWebhook(ctx context.Context, payload json.RawMessage) error {
	if err := s.backend.MollieWebhook(ctx, payload); err != nil {
		return fmt.Errorf("relay mollie webhook: %w", err)
	}
	return nil
}
