package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"boostup-bot/internal/storage/redis"
)

// SessionStore keeps the per-chat draft order between inbound events.
type SessionStore interface {
	Session(ctx context.Context, chatID int64) (*redis.Session, error)
	SaveSession(ctx context.Context, chatID int64, session *redis.Session) error
	DropSession(ctx context.Context, chatID int64) error
}

var _ SessionStore = (*redis.Storage)(nil)

// telegramAPI is the slice of the Telegram client the handlers use.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

var _ telegramAPI = (*tgbotapi.BotAPI)(nil)
