package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg.Chat.ID, msg.From.ID)
	case "help":
		b.handleHelp(msg.Chat.ID)
	case "orders":
		b.handleOrdersCommand(ctx, msg.Chat.ID, msg.From.ID)
	default:
		b.sendError(msg.Chat.ID, "Unknown command. Send /start to begin.")
	}
}

// handleStart is the single entry point: it silently resets any
// in-flight session, gates on channel membership, then opens the
// platform menu.
func (b *Bot) handleStart(ctx context.Context, chatID, userID int64) {
	if err := b.state.DropSession(ctx, chatID); err != nil {
		b.logger.Error("Failed to reset session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	if !b.isMember(userID) {
		b.sendGatePrompt(chatID)
		return
	}

	b.showPlatformMenu(ctx, chatID, "👋 Welcome!\n\nPick the platform you want to boost.")
}

func (b *Bot) handleHelp(chatID int64) {
	helpText := `Available commands:
/start - Begin a new order
/help - Show this help

Pick a platform, a service and a package, send the target link or
username, pay to the bank account shown and send your payment proof.
The operator confirms every order manually.`
	b.sendMessage(tgbotapi.NewMessage(chatID, helpText))
}
