package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boostup-bot/internal/catalog"
	"boostup-bot/internal/config"
	"boostup-bot/internal/orders"
	"boostup-bot/internal/storage/redis"
)

type Bot struct {
	tg       *tgbotapi.BotAPI
	api      telegramAPI
	logger   *zap.Logger
	state    SessionStore
	orders   *orders.Registry
	catalog  *catalog.Catalog
	cfg      *config.Config
	mu       sync.Mutex
	handlers map[string]func(context.Context, int64, string, *redis.Session)
}

func New(
	cfg *config.Config,
	sessions SessionStore,
	registry *orders.Registry,
	logger *zap.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	botAPI.Debug = cfg.Debug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := &Bot{
		tg:      botAPI,
		api:     botAPI,
		logger:  logger,
		state:   sessions,
		orders:  registry,
		catalog: catalog.Default(),
		cfg:     cfg,
	}

	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	b.handlers = map[string]func(context.Context, int64, string, *redis.Session){
		StepPlatformSelect: b.handlePlatformSelect,
		StepServiceSelect:  b.handleServiceSelect,
		StepPackageSelect:  b.handlePackageStepText,
		StepLinkInput:      b.handleLinkInput,
		StepConfirm:        b.handleConfirmStepText,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.tg.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update := <-updates:
			b.mu.Lock()
			if update.Message != nil {
				b.processMessage(ctx, update.Message)
			} else if update.CallbackQuery != nil {
				b.processCallback(ctx, update.CallbackQuery)
			}
			b.mu.Unlock()
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	session, err := b.state.Session(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Something went wrong, please try again")
		return
	}

	// Proof can be a photo, so it gets the whole message.
	if session.Step == StepAwaitingProof {
		b.handleProof(ctx, msg, session)
		return
	}

	if handler, exists := b.handlers[session.Step]; exists {
		handler(ctx, chatID, msg.Text, session)
		return
	}

	// No live session (expired, restarted, or never started): back to
	// the entry point.
	b.handleStart(ctx, chatID, msg.From.ID)
}

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	data := callback.Data

	b.logger.Debug("Processing callback",
		zap.Int64("chat_id", callback.Message.Chat.ID),
		zap.String("data", data))

	b.answerCallback(callback.ID, "")

	switch {
	case data == callbackCheckSubscription:
		b.handleSubscriptionCheck(ctx, callback)
	case strings.HasPrefix(data, callbackDecisionPrefix):
		b.handleDecisionCallback(ctx, callback)
	case strings.HasPrefix(data, callbackPackagePrefix):
		b.handlePackageCallback(ctx, callback)
	case data == callbackConfirm:
		b.handleConfirmCallback(ctx, callback)
	case data == callbackCancel:
		b.handleCancelCallback(ctx, callback)
	case data == callbackBackToServices:
		b.handleBackToServices(ctx, callback)
	case data == callbackBackToPackages:
		b.handleBackToPackages(ctx, callback)
	default:
		b.logger.Warn("Unknown callback", zap.String("data", data))
	}
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}

func (b *Bot) alertCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		b.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}

func (b *Bot) saveSession(ctx context.Context, chatID int64, session *redis.Session) {
	if err := b.state.SaveSession(ctx, chatID, session); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.String("step", session.Step),
			zap.Error(err))
	}
}
