package ports

import (
	"context"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type SlotBackend interface {
	DaySlots(ctx context.Context, date string) ([]domain.Slot, error)
	BlockSlots(ctx context.Context, date string, slots []string) error
	UnblockSlots(ctx context.Context, date string, slots []string) error
}
