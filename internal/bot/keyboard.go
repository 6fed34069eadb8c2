package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"boostup-bot/internal/catalog"
)

// BOT KEYBOARDS
//
// Menus are always rebuilt from the live catalog and the session's
// recorded fields, so a back action reproduces exactly what the
// forward traversal showed.

func (b *Bot) platformKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var buttons []tgbotapi.KeyboardButton
	for _, p := range b.catalog.Platforms() {
		buttons = append(buttons, tgbotapi.NewKeyboardButton(p.Label()))
	}
	kb := tgbotapi.NewReplyKeyboard(pairRows(buttons)...)
	kb.ResizeKeyboard = true
	return kb
}

func (b *Bot) serviceKeyboard(p catalog.Platform) tgbotapi.ReplyKeyboardMarkup {
	var buttons []tgbotapi.KeyboardButton
	for _, s := range b.catalog.Services(p) {
		buttons = append(buttons, tgbotapi.NewKeyboardButton(s.Label()))
	}
	rows := pairRows(buttons)
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(backButton)))
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func (b *Bot) packageKeyboard(p catalog.Platform, s catalog.Service) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, pkg := range b.catalog.Packages(p, s) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s %s | %d birr", pkg.Amount, s.Title(), pkg.Price),
				callbackPackagePrefix+pkg.Amount,
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(backButton, callbackBackToServices),
		tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", callbackCancel),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirm", callbackConfirm),
			tgbotapi.NewInlineKeyboardButtonData(backButton, callbackBackToPackages),
		),
	)
}

func decisionKeyboard(orderID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", callbackDecisionPrefix+"approve:"+orderID),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject", callbackDecisionPrefix+"reject:"+orderID),
		),
	)
}

func (b *Bot) gateKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("✅ Join the channel", b.cfg.GateChannelURL()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Check again", callbackCheckSubscription),
		),
	)
}

func pairRows(buttons []tgbotapi.KeyboardButton) [][]tgbotapi.KeyboardButton {
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		if i+1 < len(buttons) {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons[i], buttons[i+1]))
		} else {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons[i]))
		}
	}
	return rows
}
