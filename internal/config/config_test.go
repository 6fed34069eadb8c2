package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("OPERATOR_CHAT_ID", "999")
	t.Setenv("GATE_CHANNEL", "@gatechannel")
	t.Setenv("REDIS_ADDR", "localhost:6379")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_IDS", "777,888")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, int64(999), cfg.OperatorChatID)
	assert.Equal(t, "@gatechannel", cfg.GateChannel)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 72*time.Hour, cfg.OrderTTL)
	assert.Equal(t, []int64{777, 888}, cfg.AdminIDs)
}

func TestLoadNormalizesGateChannel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GATE_CHANNEL", "gatechannel")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "@gatechannel", cfg.GateChannel)
	assert.Equal(t, "https://t.me/gatechannel", cfg.GateChannelURL())
}

func TestLoadMissingTokenFails(t *testing.T) {
	setRequiredEnv(t)
	// required means "must be set": unset entirely, t.Setenv above
	// still restores the original value afterwards.
	require.NoError(t, os.Unsetenv("TELEGRAM_TOKEN"))

	_, err := Load()
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{777}}

	assert.True(t, cfg.IsAdmin(777))
	assert.False(t, cfg.IsAdmin(42))
	assert.False(t, (&Config{}).IsAdmin(777))
}
