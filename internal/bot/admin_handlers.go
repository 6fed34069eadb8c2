package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boostup-bot/internal/orders"
)

// DECISION RELAY
//
// Operator decisions carry only the action and the order id; the rest
// of the order is looked up in the registry, so forged or stale
// payloads cannot reach an arbitrary user.

func (b *Bot) handleDecisionCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if !b.isDecisionAllowed(callback) {
		b.alertCallback(callback.ID, "You are not allowed to decide orders.")
		return
	}

	action, orderID, ok := parseDecision(callback.Data)
	if !ok {
		b.logger.Warn("Malformed decision payload", zap.String("data", callback.Data))
		return
	}

	order, err := b.orders.Get(ctx, orderID)
	if errors.Is(err, orders.ErrNotFound) {
		b.alertCallback(callback.ID, "Unknown or already handled order.")
		return
	}
	if err != nil {
		b.logger.Error("Failed to look up order",
			zap.String("order_id", orderID),
			zap.Error(err))
		b.alertCallback(callback.ID, "Could not look up the order, try again.")
		return
	}

	var userText, annotation string
	switch action {
	case "approve":
		userText = fmt.Sprintf(
			"🎉 Congratulations!\n\nYour order #%s has been approved and is being delivered.",
			order.ID)
		annotation = "✅ Approved"
	case "reject":
		userText = fmt.Sprintf(
			"😔 Sorry, your order #%s was rejected.\n\n"+
				"If you believe this is a mistake, contact support.",
			order.ID)
		annotation = "❌ Rejected"
	}

	b.sendMessage(tgbotapi.NewMessage(order.UserID, userText))

	// Annotate the operator message; this also drops the buttons so a
	// second decision has nothing to press.
	b.editMessage(tgbotapi.NewEditMessageText(
		callback.Message.Chat.ID, callback.Message.MessageID,
		callback.Message.Text+"\n\n"+annotation+" by "+displayUsername(callback.From.UserName)))

	if err := b.orders.Remove(ctx, order.ID); err != nil {
		b.logger.Error("Failed to close order",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}

	b.logger.Info("Order decided",
		zap.String("order_id", order.ID),
		zap.String("action", action),
		zap.Int64("user_id", order.UserID))
}

func (b *Bot) isDecisionAllowed(callback *tgbotapi.CallbackQuery) bool {
	return callback.Message.Chat.ID == b.cfg.OperatorChatID || b.cfg.IsAdmin(callback.From.ID)
}

func parseDecision(data string) (action, orderID string, ok bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != "decision" {
		return "", "", false
	}
	if parts[1] != "approve" && parts[1] != "reject" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// handleOrdersCommand lists open orders to operators.
func (b *Bot) handleOrdersCommand(ctx context.Context, chatID, userID int64) {
	if chatID != b.cfg.OperatorChatID && !b.cfg.IsAdmin(userID) {
		b.sendError(chatID, "Unknown command. Send /start to begin.")
		return
	}

	open, err := b.orders.List(ctx)
	if err != nil {
		b.logger.Error("Failed to list open orders", zap.Error(err))
		b.sendError(chatID, "Could not list open orders")
		return
	}

	if len(open) == 0 {
		b.sendMessage(tgbotapi.NewMessage(chatID, "No open orders. 🎉"))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Open orders: %d\n", len(open))
	for _, order := range open {
		fmt.Fprintf(&sb, "\n#%s — %s %s %s for %s (%d birr), user %s",
			order.ID, order.Platform, order.Amount, order.Service,
			order.Target, order.Price, displayUsername(order.Username))
	}
	b.sendMessage(tgbotapi.NewMessage(chatID, sb.String()))
}
