package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"boostup-bot/internal/bot"
	"boostup-bot/internal/config"
	"boostup-bot/internal/orders"
	"boostup-bot/internal/storage/redis"
	"boostup-bot/pkg/logger"
)

// ENTRY POINT

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	store, err := redis.New(ctx, redis.Config{
		Addr:       cfg.RedisAddr,
		Password:   cfg.RedisPassword,
		DB:         cfg.RedisDB,
		SessionTTL: cfg.SessionTTL,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init Redis storage", zap.Error(err))
	}
	defer store.Close()

	registry := orders.NewRegistry(store, cfg.OrderTTL)

	tgBot, err := bot.New(cfg, store, registry, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := tgBot.Start(ctx); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}
