package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boostup-bot/internal/orders"
)

// ORDER NOTIFIER
//
// Delivery to the operator is best-effort: the user has already been
// acked, so failures here are logged and swallowed.

func (b *Bot) notifyOperator(ctx context.Context, order orders.Order, proof *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(b.cfg.OperatorChatID, FormatOrderNotification(order))
	msg.ReplyMarkup = decisionKeyboard(order.ID)

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to deliver order notification",
			zap.String("order_id", order.ID),
			zap.Int64("operator_chat_id", b.cfg.OperatorChatID),
			zap.Error(err))
	}

	b.relayProof(order, proof)
}

// relayProof passes the raw proof on: photos are forwarded as-is,
// text is quoted.
func (b *Bot) relayProof(order orders.Order, proof *tgbotapi.Message) {
	if len(proof.Photo) > 0 {
		forward := tgbotapi.NewForward(b.cfg.OperatorChatID, proof.Chat.ID, proof.MessageID)
		if _, err := b.api.Send(forward); err != nil {
			b.logger.Error("Failed to forward proof photo",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
		return
	}

	if proof.Text != "" {
		quote := tgbotapi.NewMessage(b.cfg.OperatorChatID, fmt.Sprintf(
			"🧾 Proof text for order #%s:\n%s", order.ID, proof.Text))
		if _, err := b.api.Send(quote); err != nil {
			b.logger.Error("Failed to relay proof text",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}
}

func FormatOrderNotification(order orders.Order) string {
	return fmt.Sprintf(
		"🔔 New order #%s\n\n"+
			"👤 User: %s (ID: %d)\n"+
			"📦 Service: %s - %s\n"+
			"🔢 Amount: %s\n"+
			"🔗 Target: %s\n"+
			"💵 Price: %d birr\n"+
			"🕒 Submitted: %s\n\n"+
			"Verify the payment proof below, then approve or reject.",
		order.ID,
		displayUsername(order.Username),
		order.UserID,
		order.Platform, order.Service,
		order.Amount,
		order.Target,
		order.Price,
		order.CreatedAt.Format("02.01.2006 15:04"),
	)
}

func displayUsername(username string) string {
	if username == "" {
		return "(no username)"
	}
	return "@" + username
}
