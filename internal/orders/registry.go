package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"boostup-bot/internal/catalog"
)

// ErrNotFound marks a decision against an order that was never
// registered or was already decided.
var ErrNotFound = errors.New("order not found")

// Order is a submitted draft waiting for the operator's decision. It
// exists only in the registry; once approved or rejected it is gone.
type Order struct {
	ID        string           `json:"id"`
	UserID    int64            `json:"user_id"`
	Username  string           `json:"username,omitempty"`
	Platform  catalog.Platform `json:"platform"`
	Service   catalog.Service  `json:"service"`
	Amount    string           `json:"amount"`
	Price     int              `json:"price"`
	Target    string           `json:"target"`
	ProofText string           `json:"proof_text,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// KV is the slice of the redis storage the registry needs. Get returns
// nil data for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// Registry holds open orders keyed by order id so operator decisions
// can be validated instead of trusting callback payloads.
type Registry struct {
	kv  KV
	ttl time.Duration
}

func NewRegistry(kv KV, ttl time.Duration) *Registry {
	return &Registry{kv: kv, ttl: ttl}
}

// NewID generates a short human-readable order reference. Derived from
// a UUID, so collisions within the registry TTL are not a practical
// concern.
func NewID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

func (r *Registry) Put(ctx context.Context, order Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	if err := r.kv.Set(ctx, orderKey(order.ID), data, r.ttl); err != nil {
		return fmt.Errorf("register order %s: %w", order.ID, err)
	}
	return nil
}

func (r *Registry) Get(ctx context.Context, id string) (*Order, error) {
	data, err := r.kv.Get(ctx, orderKey(id))
	if err != nil {
		return nil, fmt.Errorf("lookup order %s: %w", id, err)
	}
	if data == nil {
		return nil, ErrNotFound
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return &order, nil
}

// Remove closes an order. Removing twice is not an error; the second
// decision already failed at Get.
func (r *Registry) Remove(ctx context.Context, id string) error {
	if err := r.kv.Del(ctx, orderKey(id)); err != nil {
		return fmt.Errorf("remove order %s: %w", id, err)
	}
	return nil
}

// List returns all open orders, oldest first.
func (r *Registry) List(ctx context.Context) ([]Order, error) {
	keys, err := r.kv.Keys(ctx, "order:*")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var out []Order
	for _, key := range keys {
		order, err := r.Get(ctx, strings.TrimPrefix(key, "order:"))
		if errors.Is(err, ErrNotFound) {
			continue // expired between KEYS and GET
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *order)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func orderKey(id string) string {
	return "order:" + id
}
