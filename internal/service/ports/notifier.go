package ports

import (
	"context"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type StaffNotifier interface {
	NotifyBookingDeleted(ctx context.Context, actor, bookingID string)
	NotifyRefunded(ctx context.Context, actor string, b *domain.Booking, outcome *domain.RefundOutcome, amount domain.Amount)
	NotifySlotChanged(ctx context.Context, actor, date string, slot domain.Slot, action domain.AuditAction)
}
