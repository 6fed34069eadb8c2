package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// SUBSCRIPTION GATE
//
// Users must be members of the gate channel before the wizard opens.
// Any membership lookup failure counts as "not a member".

func (b *Bot) isMember(userID int64) bool {
	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: b.cfg.GateChannel,
			UserID:             userID,
		},
	})
	if err != nil {
		b.logger.Error("Failed to check gate membership",
			zap.Int64("user_id", userID),
			zap.String("channel", b.cfg.GateChannel),
			zap.Error(err))
		return false
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true
	}
	return false
}

func (b *Bot) sendGatePrompt(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"👋 Welcome!\n\nTo use this bot, please join our channel first.")
	msg.ReplyMarkup = b.gateKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleSubscriptionCheck(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	if !b.isMember(callback.From.ID) {
		b.alertCallback(callback.ID, "🤔 You haven't joined the channel yet. Please join first.")
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID,
		"🎉 Thank you! You can use the bot now.")
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Warn("Failed to edit gate message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
}
