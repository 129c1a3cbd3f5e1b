package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"nazzy-pedidos/internal/store"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadResolvesToDefault(t *testing.T) {
	ctx := context.Background()
	tab := store.NewHub().Tab()
	def := record{Name: "fallback", Count: 7}

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, def, store.Load(ctx, tab, "absent", def))
	})

	t.Run("malformed value", func(t *testing.T) {
		assert.NoError(t, tab.Set(ctx, "bad", "{not json"))
		assert.Equal(t, def, store.Load(ctx, tab, "bad", def))
	})

	t.Run("null value", func(t *testing.T) {
		assert.NoError(t, tab.Set(ctx, "nil", "null"))
		assert.Equal(t, def, store.Load(ctx, tab, "nil", def))
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	tab := store.NewHub().Tab()

	want := record{Name: "n", Count: 3}
	assert.NoError(t, store.Save(ctx, tab, "k", want))
	assert.Equal(t, want, store.Load(ctx, tab, "k", record{}))
}

func TestReadAfterWriteWithinTab(t *testing.T) {
	ctx := context.Background()
	tab := store.NewHub().Tab()

	assert.NoError(t, tab.Set(ctx, "k", `"v1"`))
	assert.NoError(t, tab.Set(ctx, "k", `"v2"`))
	raw, ok, err := tab.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"v2"`, raw)
}

func TestBroadcastSkipsWriter(t *testing.T) {
	ctx := context.Background()
	hub := store.NewHub()
	writer := hub.Tab()
	other := hub.Tab()

	var writerEvents, otherEvents []store.Event
	unsubWriter := writer.Subscribe(func(ev store.Event) { writerEvents = append(writerEvents, ev) })
	defer unsubWriter()
	unsubOther := other.Subscribe(func(ev store.Event) { otherEvents = append(otherEvents, ev) })
	defer unsubOther()

	assert.NoError(t, writer.Set(ctx, store.KeyNotifications, "[]"))

	assert.Empty(t, writerEvents, "a handle must never hear its own writes")
	assert.Equal(t, []store.Event{{Key: store.KeyNotifications}}, otherEvents)

	// Deletes broadcast the same way.
	assert.NoError(t, other.Delete(ctx, store.KeyNotifications))
	assert.Equal(t, []store.Event{{Key: store.KeyNotifications}}, writerEvents)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ctx := context.Background()
	hub := store.NewHub()
	writer := hub.Tab()
	other := hub.Tab()

	calls := 0
	unsub := other.Subscribe(func(store.Event) { calls++ })

	assert.NoError(t, writer.Set(ctx, "k", "1"))
	unsub()
	assert.NoError(t, writer.Set(ctx, "k", "2"))

	assert.Equal(t, 1, calls)
}

func TestSharedDataAcrossTabs(t *testing.T) {
	ctx := context.Background()
	hub := store.NewHub()
	a := hub.Tab()
	b := hub.Tab()

	assert.NoError(t, store.Save(ctx, a, "k", record{Name: "shared"}))
	assert.Equal(t, "shared", store.Load(ctx, b, "k", record{}).Name)
}
