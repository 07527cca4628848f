package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const sessionTimeLayout = "02.01.2006 15:04"

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

func (n *TelegramNotifier) NotifyRegistrationPending(ctx context.Context, reg *domain.Registration, s *domain.Session) {
	text := fmt.Sprintf(
		"*Место забронировано!*\n\n"+"Занятие: %s\n"+"Дата (время указано в UTC): %s\n"+
			"Оплатите запись в течение %s, иначе бронь будет отменена.",
		s.Title, s.StartsAt.Format(sessionTimeLayout), s.PaymentTTL.String(),
	)
	n.send(ctx, reg.Contact.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRegistrationConfirmed(ctx context.Context, reg *domain.Registration, s *domain.Session) {
	text := fmt.Sprintf(
		"*Запись подтверждена!*\n\n"+"Занятие: %s\n"+"Дата (время указано в UTC): %s\n"+"Мест за вами: %d",
		s.Title, s.StartsAt.Format(sessionTimeLayout), reg.SpotsConsumed(),
	)
	n.send(ctx, reg.Contact.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRegistrationExpired(ctx context.Context, reg *domain.Registration, s *domain.Session) {
	text := fmt.Sprintf(
		"*Бронь отменена (истекло время оплаты)*\n\n"+"Занятие: %s\n"+"Дата (время указано в UTC): %s",
		s.Title, s.StartsAt.Format(sessionTimeLayout),
	)
	n.send(ctx, reg.Contact.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyWaitlistPromoted(ctx context.Context, c *domain.Conversion, s *domain.Session) {
	var chatID *int64
	if c.Entry.Contact != nil {
		chatID = c.Entry.Contact.TelegramChatID
	}

	text := fmt.Sprintf(
		"*Освободилось место!*\n\n"+"Занятие: %s\n"+"Дата (время указано в UTC): %s\n"+"Подтверждено мест: %d",
		s.Title, s.StartsAt.Format(sessionTimeLayout), c.Units,
	)
	if c.Remaining > 0 {
		text += fmt.Sprintf("\nЕщё в листе ожидания: %d", c.Remaining)
	}
	n.send(ctx, chatID, text)
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
