package bot

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"boostup-bot/internal/catalog"
	"boostup-bot/internal/config"
	"boostup-bot/internal/orders"
	"boostup-bot/internal/storage/redis"
)

const (
	testUserChatID   int64 = 42
	testOperatorChat int64 = 999
)

// fakeTelegram records everything the bot tries to deliver.
type fakeTelegram struct {
	sent         []tgbotapi.Chattable
	requests     []tgbotapi.Chattable
	memberStatus string
	memberErr    error
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeTelegram) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeTelegram) GetChatMember(tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if f.memberErr != nil {
		return tgbotapi.ChatMember{}, f.memberErr
	}
	return tgbotapi.ChatMember{Status: f.memberStatus}, nil
}

// messagesTo returns the plain messages sent to one chat, in order.
func (f *fakeTelegram) messagesTo(chatID int64) []tgbotapi.MessageConfig {
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok && msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	return out
}

func (f *fakeTelegram) lastMessageTo(chatID int64) (tgbotapi.MessageConfig, bool) {
	msgs := f.messagesTo(chatID)
	if len(msgs) == 0 {
		return tgbotapi.MessageConfig{}, false
	}
	return msgs[len(msgs)-1], true
}

func (f *fakeTelegram) lastEdit() (tgbotapi.EditMessageTextConfig, bool) {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if edit, ok := f.sent[i].(tgbotapi.EditMessageTextConfig); ok {
			return edit, true
		}
	}
	return tgbotapi.EditMessageTextConfig{}, false
}

func (f *fakeTelegram) lastAlertText() string {
	for i := len(f.requests) - 1; i >= 0; i-- {
		if cb, ok := f.requests[i].(tgbotapi.CallbackConfig); ok && cb.ShowAlert {
			return cb.Text
		}
	}
	return ""
}

// memorySessions is a map-backed SessionStore. Sessions are stored by
// value so handlers see the same copy semantics as the redis store.
type memorySessions struct {
	sessions map[int64]redis.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[int64]redis.Session)}
}

func (m *memorySessions) Session(_ context.Context, chatID int64) (*redis.Session, error) {
	session := m.sessions[chatID]
	return &session, nil
}

func (m *memorySessions) SaveSession(_ context.Context, chatID int64, session *redis.Session) error {
	m.sessions[chatID] = *session
	return nil
}

func (m *memorySessions) DropSession(_ context.Context, chatID int64) error {
	delete(m.sessions, chatID)
	return nil
}

type mapKV struct {
	data map[string][]byte
}

func newMapKV() *mapKV {
	return &mapKV{data: make(map[string][]byte)}
}

func (m *mapKV) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *mapKV) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.data[key] = data
	return nil
}

func (m *mapKV) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapKV) Keys(_ context.Context, _ string) ([]string, error) {
	var keys []string
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func newTestBot() (*Bot, *fakeTelegram, *memorySessions) {
	api := &fakeTelegram{memberStatus: "member"}
	sessions := newMemorySessions()

	b := &Bot{
		api:     api,
		logger:  zap.NewNop(),
		state:   sessions,
		orders:  orders.NewRegistry(newMapKV(), time.Hour),
		catalog: catalog.Default(),
		cfg: &config.Config{
			OperatorChatID: testOperatorChat,
			GateChannel:    "@gatechannel",
			AdminIDs:       []int64{777},
		},
	}
	b.registerHandlers()
	return b, api, sessions
}

func userMessage(chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 100,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{ID: chatID, UserName: "sampleuser"},
		Text:      text,
	}
}

func userCommand(chatID int64, text string) *tgbotapi.Message {
	msg := userMessage(chatID, text)
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	return msg
}

func userPhoto(chatID int64) *tgbotapi.Message {
	msg := userMessage(chatID, "")
	msg.Photo = []tgbotapi.PhotoSize{{FileID: "photo-1", Width: 800, Height: 600}}
	return msg
}

func callbackFrom(chatID int64, messageID int, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		Data: data,
		From: &tgbotapi.User{ID: chatID, UserName: "sampleuser"},
		Message: &tgbotapi.Message{
			MessageID: messageID,
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      "original message",
		},
	}
}

var errTransport = errors.New("telegram: transport error")
