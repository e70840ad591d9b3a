package notify

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookline/internal/logging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botAPI is the slice of tgbotapi.BotAPI used here, extracted so tests can
// substitute a fake sender.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier delivers messages to Telegram chats. Recipients are chat
// IDs in decimal form; anything else is logged and dropped.
type TelegramNotifier struct {
	bot    botAPI
	logger logging.Logger
}

func NewTelegramNotifier(token string, logger logging.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{bot: bot, logger: logger.With("module", "telegram")}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, to, text string) bool {
	delivered := n.send(ctx, to, text)
	observe("telegram", delivered)
	return delivered
}

func (n *TelegramNotifier) send(ctx context.Context, to, text string) bool {
	// ParseInt tolerates a leading "+", which a phone number carries and a
	// chat ID never does. Chat IDs are decimal, negative for group chats.
	if strings.HasPrefix(to, "+") {
		n.logger.Warn(ctx, "telegram recipient is not a chat id", "to", to)
		return false
	}

	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		n.logger.Warn(ctx, "telegram recipient is not a chat id", "to", to)
		return false
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		n.logger.Warn(ctx, "telegram send failed", "chat_id", chatID, "error", err)
		return false
	}
	return true
}
