package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boostup-bot/internal/catalog"
	"boostup-bot/internal/orders"
	"boostup-bot/internal/storage/redis"
)

// WIZARD STEPS
//
// Each show* function renders one step's prompt from the session's
// recorded fields. Back-navigation calls the same function the forward
// path used, so reconstruction is idempotent. A show* call whose
// prerequisite fields are missing falls back to the platform menu.

func (b *Bot) showPlatformMenu(ctx context.Context, chatID int64, intro string) {
	msg := tgbotapi.NewMessage(chatID, intro)
	msg.ReplyMarkup = b.platformKeyboard()
	b.sendMessage(msg)

	b.saveSession(ctx, chatID, &redis.Session{Step: StepPlatformSelect})
}

func (b *Bot) showServiceMenu(ctx context.Context, chatID int64, session *redis.Session) {
	if session.Platform == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"✨ %s selected.\n\nNow pick the service you need.",
		session.Platform.Title()))
	msg.ReplyMarkup = b.serviceKeyboard(session.Platform)
	b.sendMessage(msg)

	session.Step = StepServiceSelect
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) showPackageMenu(ctx context.Context, chatID int64, session *redis.Session) {
	if session.Platform == "" || session.Service == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"💖 %s selected.\n\nPick the package you want:",
		session.Service.Title()))
	msg.ReplyMarkup = b.packageKeyboard(session.Platform, session.Service)
	b.sendMessage(msg)

	session.Step = StepPackageSelect
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) showConfirm(ctx context.Context, chatID int64, session *redis.Session) {
	if session.Target == "" || session.Amount == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatOrderSummary(session))
	msg.ReplyMarkup = confirmKeyboard()
	b.sendMessage(msg)

	session.Step = StepConfirm
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) handlePlatformSelect(ctx context.Context, chatID int64, text string, session *redis.Session) {
	platform, ok := catalog.PlatformFromLabel(text)
	if !ok {
		b.sendError(chatID, "Please pick a platform from the keyboard below")
		return
	}

	if len(b.catalog.Services(platform)) == 0 {
		b.sendError(chatID, fmt.Sprintf(
			"Sorry, %s packages are coming soon. Pick another platform for now.",
			platform.Title()))
		return
	}

	*session = redis.Session{Platform: platform}
	b.showServiceMenu(ctx, chatID, session)
}

func (b *Bot) handleServiceSelect(ctx context.Context, chatID int64, text string, session *redis.Session) {
	if text == backButton {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	service, ok := catalog.ServiceFromLabel(text)
	if !ok {
		b.sendError(chatID, "Please pick a service from the keyboard below")
		return
	}

	if len(b.catalog.Packages(session.Platform, service)) == 0 {
		b.sendError(chatID, "Sorry, packages for this service are coming soon.")
		return
	}

	session.Service = service
	session.Amount = ""
	session.Price = 0
	session.Target = ""
	b.showPackageMenu(ctx, chatID, session)
}

// handlePackageStepText handles plain text typed while the inline
// package keyboard is up: re-render the same menu.
func (b *Bot) handlePackageStepText(ctx context.Context, chatID int64, _ string, session *redis.Session) {
	b.sendError(chatID, "Please use the package buttons")
	b.showPackageMenu(ctx, chatID, session)
}

func (b *Bot) handleLinkInput(ctx context.Context, chatID int64, text string, session *redis.Session) {
	if session.Platform == "" || session.Service == "" || session.Amount == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}

	if err := ValidateTarget(session.Platform, session.Service, text); err != nil {
		b.sendError(chatID, err.Error())
		return
	}

	session.Target = text
	b.showConfirm(ctx, chatID, session)
}

// handleConfirmStepText handles plain text typed while the confirm
// buttons are up: show the summary again.
func (b *Bot) handleConfirmStepText(ctx context.Context, chatID int64, _ string, session *redis.Session) {
	b.sendError(chatID, "Please use the ✅ Confirm or ◀️ Back buttons")
	b.showConfirm(ctx, chatID, session)
}

// handleProof accepts anything (text or photo) as proof of payment,
// registers the order and hands it to the operator. The user ack goes
// out before the operator notification, so notifier failures never
// block it.
func (b *Bot) handleProof(ctx context.Context, msg *tgbotapi.Message, session *redis.Session) {
	chatID := msg.Chat.ID

	if session.Platform == "" || session.Service == "" || session.Amount == "" {
		b.showPlatformMenu(ctx, chatID, "Pick the platform you want to boost.")
		return
	}
	if msg.Text == "" && len(msg.Photo) == 0 {
		b.sendError(chatID, "Please send a payment screenshot or the transaction ID as text")
		return
	}

	order := orders.Order{
		ID:        orders.NewID(),
		UserID:    msg.From.ID,
		Username:  msg.From.UserName,
		Platform:  session.Platform,
		Service:   session.Service,
		Amount:    session.Amount,
		Price:     session.Price,
		Target:    session.Target,
		ProofText: msg.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := b.orders.Put(ctx, order); err != nil {
		b.logger.Error("Failed to register order",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		// Session untouched; the user can resend the proof.
		b.sendError(chatID, "Could not submit your order, please send the proof again")
		return
	}

	b.sendMessage(tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"🙏 Thank you!\n\n"+
			"Your payment proof for order #%s was received. "+
			"It will be verified and you will get a reply shortly.",
		order.ID)))

	b.notifyOperator(ctx, order, msg)

	if err := b.state.DropSession(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func formatOrderSummary(session *redis.Session) string {
	return fmt.Sprintf(
		"🔵 %s | %s\n\n"+
			"📦 Package: %s %s | %d birr\n"+
			"🔗 Target: %s\n"+
			"💸 Total due: %d birr\n\n"+
			"♻️ Press ✅ Confirm to continue.",
		session.Platform.Title(), session.Service.Title(),
		session.Amount, session.Service.Title(), session.Price,
		session.Target,
		session.Price,
	)
}

func formatPaymentInfo(price int) string {
	return fmt.Sprintf(
		"🏦 Bank payment details\n\n"+
			"- Bank: %s\n"+
			"- Account: %s\n"+
			"- Phone: %s\n"+
			"- Name: %s\n\n"+
			"💰 Amount due: %d birr\n\n"+
			"🧾 Send a payment screenshot or the transaction ID here once paid.",
		bankName, bankAccount, bankPhone, bankAccountName, price)
}
