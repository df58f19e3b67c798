package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/metrics"
	"github.com/stpnv0/MOTBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SlotService struct {
	backend  ports.SlotBackend
	audit    ports.AuditRepo
	notifier ports.StaffNotifier
	logger   logger.Logger
}

// NewSlotService builds the slot status proxy. audit and notifier may be
// nil.
func NewSlotService(
	backend ports.SlotBackend,
	audit ports.AuditRepo,
	notifier ports.StaffNotifier,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		backend:  backend,
		audit:    audit,
		notifier: notifier,
		logger:   logger,
	}
}

// Day returns every slot of date and the normalized date it was asked
// for.
func (s *SlotService) Day(ctx context.Context, date string) (string, []domain.Slot, error) {
	day, err := domain.NormalizeDate(date)
	if err != nil {
		return "", nil, err
	}

	slots, err := s.backend.DaySlots(ctx, day)
	if err != nil {
		return day, nil, fmt.Errorf("get slots for %s: %w", day, err)
	}
	return day, slots, nil
}

type slotDetails struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Toggle blocks an available slot or unblocks a blocked one, then
// refetches the whole day whatever the mutation returned. The refetched
// slots come back even when the mutation failed.
//
// slot.Status is the status the caller saw. The action follows the
// backend's current status; when the two differ nothing is changed and
// the current day comes back with ErrSlotChanged.
func (s *SlotService) Toggle(ctx context.Context, date string, slot domain.Slot) ([]domain.Slot, error) {
	day, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	switch slot.Status {
	case domain.SlotAvailable, domain.SlotBlocked:
	case domain.SlotBooked:
		return nil, domain.ErrSlotBooked
	default:
		return nil, fmt.Errorf("%w: unknown slot status %q", domain.ErrValidation, slot.Status)
	}

	current, err := s.backend.DaySlots(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("get slots for %s: %w", day, err)
	}
	idx := slices.IndexFunc(current, func(c domain.Slot) bool { return c.Time == slot.Time })
	if idx < 0 {
		return current, fmt.Errorf("%w: no slot at %s on %s", domain.ErrValidation, slot.Time, day)
	}

	var action domain.AuditAction
	switch status := current[idx].Status; {
	case status == domain.SlotBooked:
		return current, domain.ErrSlotBooked
	case status != slot.Status:
		return current, fmt.Errorf("slot %s is %s: %w", slot.Time, status, domain.ErrSlotChanged)
	case status == domain.SlotAvailable:
		action = domain.AuditBlock
	default:
		action = domain.AuditUnblock
	}

	if action == domain.AuditBlock {
		err = s.backend.BlockSlots(ctx, day, []string{slot.Time})
	} else {
		err = s.backend.UnblockSlots(ctx, day, []string{slot.Time})
	}
	metrics.IncSlotToggle(string(action), metrics.Outcome(err))
	recordAudit(ctx, s.audit, s.logger, action, day+" "+slot.Time, slotDetails{Date: day, Time: slot.Time}, err)

	if err != nil {
		s.logger.Warn("slot toggle failed",
			logger.String("date", day),
			logger.String("time", slot.Time),
			logger.String("action", string(action)),
			logger.String("error", err.Error()),
		)
	} else {
		s.logger.Info("slot toggled",
			logger.String("date", day),
			logger.String("time", slot.Time),
			logger.String("action", string(action)),
		)
		if s.notifier != nil {
			go s.notifier.NotifySlotChanged(context.WithoutCancel(ctx), ActorFrom(ctx), day, slot, action)
		}
	}

	slots, ferr := s.backend.DaySlots(ctx, day)
	if err != nil {
		return slots, fmt.Errorf("%s slot %s: %w", action, slot.Time, err)
	}
	if ferr != nil {
		return nil, fmt.Errorf("refetch slots for %s: %w", day, ferr)
	}
	return slots, nil
}
