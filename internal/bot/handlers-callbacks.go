package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boostup-bot/internal/catalog"
	"boostup-bot/internal/storage/redis"
)

func (b *Bot) callbackSession(ctx context.Context, callback *tgbotapi.CallbackQuery) (*redis.Session, bool) {
	chatID := callback.Message.Chat.ID

	session, err := b.state.Session(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Something went wrong, please try again")
		return nil, false
	}
	return session, true
}

func (b *Bot) handlePackageCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	session, ok := b.callbackSession(ctx, callback)
	if !ok {
		return
	}
	if session.Platform == "" || session.Service == "" {
		// Stale button from a reset session.
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	amount := strings.TrimPrefix(callback.Data, callbackPackagePrefix)
	price, ok := b.catalog.Price(session.Platform, session.Service, amount)
	if !ok {
		// Replayed button text from before a price sheet change.
		b.alertCallback(callback.ID, "That package is no longer available, please pick again.")
		b.editMessage(tgbotapi.NewEditMessageTextAndMarkup(
			chatID, callback.Message.MessageID,
			"Pick the package you want:",
			b.packageKeyboard(session.Platform, session.Service)))
		return
	}

	session.Amount = amount
	session.Price = price

	b.editMessage(tgbotapi.NewEditMessageText(
		chatID, callback.Message.MessageID, targetPrompt(session)))

	session.Step = StepLinkInput
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) handleConfirmCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	session, ok := b.callbackSession(ctx, callback)
	if !ok {
		return
	}
	if session.Target == "" || session.Amount == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	b.editMessage(tgbotapi.NewEditMessageText(
		chatID, callback.Message.MessageID, formatPaymentInfo(session.Price)))

	// Payment details shown; next inbound message is the proof.
	session.Step = StepAwaitingProof
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) handleCancelCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	if err := b.state.DropSession(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	b.editMessage(tgbotapi.NewEditMessageText(
		chatID, callback.Message.MessageID,
		"Order cancelled. Send /start whenever you want to begin again."))
}

func (b *Bot) handleBackToServices(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	session, ok := b.callbackSession(ctx, callback)
	if !ok {
		return
	}

	// The inline menu is replaced by a reply keyboard, so drop it.
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, callback.Message.MessageID)); err != nil {
		b.logger.Warn("Failed to delete message",
			zap.Int("message_id", callback.Message.MessageID),
			zap.Error(err))
	}

	b.showServiceMenu(ctx, chatID, session)
}

func (b *Bot) handleBackToPackages(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	session, ok := b.callbackSession(ctx, callback)
	if !ok {
		return
	}
	if session.Platform == "" || session.Service == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	// Rebuild the package menu from the session fields, in place.
	b.editMessage(tgbotapi.NewEditMessageTextAndMarkup(
		chatID, callback.Message.MessageID,
		fmt.Sprintf("💖 %s selected.\n\nPick the package you want:", session.Service.Title()),
		b.packageKeyboard(session.Platform, session.Service)))

	session.Step = StepPackageSelect
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) editMessage(edit tgbotapi.Chattable) {
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Warn("Failed to edit message", zap.Error(err))
	}
}

func targetPrompt(session *redis.Session) string {
	amount := fmt.Sprintf("%s %s", session.Amount, session.Service.Title())

	if session.Platform == catalog.PlatformTelegram {
		return fmt.Sprintf(
			"🔗 Send the Telegram post link where the %s should be added.\n\n"+
				"Example: https://t.me/channel_name/123",
			amount)
	}
	if session.Service.IsEngagement() {
		return fmt.Sprintf(
			"🔗 Send the %s username or content link for the %s.\n\n"+
				"Example: @username",
			session.Platform.Title(), amount)
	}
	return fmt.Sprintf(
		"🔗 Send the %s account username for the %s.\n\n"+
			"Example: @username",
		session.Platform.Title(), amount)
}
