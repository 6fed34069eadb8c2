package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	TelegramToken  string        `env:"TELEGRAM_TOKEN,required"`
	OperatorChatID int64         `env:"OPERATOR_CHAT_ID,required"`
	GateChannel    string        `env:"GATE_CHANNEL,required"`
	RedisAddr      string        `env:"REDIS_ADDR,required"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	OrderTTL       time.Duration `env:"ORDER_TTL" envDefault:"72h"`
	AdminIDs       []int64       `env:"ADMIN_IDS" envSeparator:","`
	Debug          bool          `env:"DEBUG" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// The membership API addresses the gate channel by @username.
	if !strings.HasPrefix(cfg.GateChannel, "@") {
		cfg.GateChannel = "@" + cfg.GateChannel
	}

	return &cfg, nil
}

// GateChannelURL is the public join link for the gate channel.
func (c *Config) GateChannelURL() string {
	return "https://t.me/" + strings.TrimPrefix(c.GateChannel, "@")
}

// IsAdmin reports whether the given user is a configured operator.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
