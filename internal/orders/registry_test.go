package orders

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boostup-bot/internal/catalog"
)

// mapKV is an in-memory stand-in for the redis storage.
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

func testOrder(id string, createdAt time.Time) Order {
	return Order{
		ID:        id,
		UserID:    42,
		Username:  "sampleuser",
		Platform:  catalog.PlatformTikTok,
		Service:   catalog.ServiceFollowers,
		Amount:    "1000",
		Price:     700,
		Target:    "@sampleuser",
		ProofText: "TXN123",
		CreatedAt: createdAt,
	}
}

func TestRegistryPutGetRemove(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(newMapKV(), time.Hour)

	order := testOrder("AB12CD34", time.Now().UTC())
	require.NoError(t, reg.Put(ctx, order))

	got, err := reg.Get(ctx, "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, order.UserID, got.UserID)
	assert.Equal(t, order.Price, got.Price)
	assert.Equal(t, order.Target, got.Target)

	require.NoError(t, reg.Remove(ctx, "AB12CD34"))

	_, err = reg.Get(ctx, "AB12CD34")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryUnknownOrder(t *testing.T) {
	reg := NewRegistry(newMapKV(), time.Hour)

	_, err := reg.Get(context.Background(), "NOPE0000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryDoubleDecision(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(newMapKV(), time.Hour)

	require.NoError(t, reg.Put(ctx, testOrder("AA00BB11", time.Now())))

	first, err := reg.Get(ctx, "AA00BB11")
	require.NoError(t, err)
	require.NoError(t, reg.Remove(ctx, first.ID))

	// A second press of the decision button finds nothing to decide.
	_, err = reg.Get(ctx, "AA00BB11")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, reg.Remove(ctx, "AA00BB11"))
}

func TestRegistryListOldestFirst(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(newMapKV(), time.Hour)

	base := time.Now().UTC()
	require.NoError(t, reg.Put(ctx, testOrder("NEWER111", base.Add(time.Minute))))
	require.NoError(t, reg.Put(ctx, testOrder("OLDER111", base)))

	list, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "OLDER111", list[0].ID)
	assert.Equal(t, "NEWER111", list[1].ID)
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 8)
	assert.Equal(t, strings.ToUpper(id), id)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[NewID()] = true
	}
	assert.Greater(t, len(seen), 90, "ids should be effectively unique")
}
