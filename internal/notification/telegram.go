package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier delivers booking notifications to users who linked a
// telegram chat. With an empty token it degrades to a no-op that only logs.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Seats reserved!*\n\n"+"Ref: %s\n"+"Taxi: %s\n"+"Route: %s → %s at %s\n"+"Seats: %d, total %s\n\n"+"Complete payment to secure your seats.",
		b.Ref, b.TaxiName, b.Origin, b.Dest, b.TimeLabel,
		b.Seats, domain.FormatMoney(b.Total),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Payment received!*\n\n"+"Ref: %s\n"+"Taxi: %s\n"+"Route: %s → %s at %s\n"+"Your seats are confirmed.",
		b.Ref, b.TaxiName, b.Origin, b.Dest, b.TimeLabel,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Ref: %s\n"+"Taxi: %s\n"+"Reason: %s",
		b.Ref, b.TaxiName, b.CancellationReason,
	)
	if b.CancellationFee > 0 {
		text += fmt.Sprintf("\nCancellation fee: %s", domain.FormatMoney(b.CancellationFee))
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyOnTheWay(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Your driver is on the way!*\n\n"+"Ref: %s\n"+"Driver: %s (%s)",
		b.Ref, b.DriverName, b.TaxiName,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyDeparture(ctx context.Context, user *domain.User, b *domain.Booking, minutes int) {
	text := fmt.Sprintf(
		"*Departure in about %d minutes*\n\n"+"Ref: %s\n"+"Taxi: %s leaves %s at %s.",
		minutes, b.Ref, b.TaxiName, b.Origin, b.TimeLabel,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
