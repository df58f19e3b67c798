package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier tells the staff chat about mutations made through the
// admin dashboard.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingDeleted(ctx context.Context, actor, bookingID string) {
	text := fmt.Sprintf(
		"*Booking deleted*\n\n"+"Booking: `%s`\n"+"By: %s",
		bookingID, tgbotapi.EscapeText(tgbotapi.ModeMarkdown, actor),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRefunded(
	ctx context.Context,
	actor string,
	b *domain.Booking,
	outcome *domain.RefundOutcome,
	amount domain.Amount,
) {
	text := fmt.Sprintf(
		"*Refund issued*\n\n"+"Customer: %s\n"+"MOT: %s %s\n"+"Amount: £%s via %s\n"+"By: %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, b.Name()),
		b.DisplayDate(), b.SelectedTimeSlot,
		amount, outcome.Method,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, actor),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifySlotChanged(ctx context.Context, actor, date string, slot domain.Slot, action domain.AuditAction) {
	verb := "blocked"
	if action == domain.AuditUnblock {
		verb = "unblocked"
	}
	text := fmt.Sprintf(
		"*Slot %s*\n\n"+"Date: %s\n"+"Time: %s\n"+"By: %s",
		verb, date, slot.Time,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, actor),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
