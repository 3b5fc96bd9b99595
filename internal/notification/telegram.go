package notification

import (
	"context"
	"fmt"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier delivers pushes through a Telegram bot. With an empty
// token the notifier runs disabled and every delivery is a logged no-op, so
// the rest of the system works without a bot configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, push delivery disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Deliver(ctx context.Context, user *domain.User, title, body string) error {
	if n.bot == nil {
		n.logger.Debug("push skipped (bot disabled)",
			logger.String("user_id", user.ID),
			logger.String("title", title),
		)
		return nil
	}

	if user.TelegramChatID == nil {
		n.logger.Debug("push skipped (no chat_id)",
			logger.String("user_id", user.ID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("push canceled: %w", err)
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, fmt.Sprintf("*%s*\n\n%s", title, body))
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
