package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Keys of the shared origin store. The admin panel reads and writes these
// names directly, so they are frozen.
const (
	KeyUsers         = "nazzy_users"
	KeySession       = "nazzy_session"
	KeyOrders        = "nazzy_orders"
	KeyAdmins        = "nazzy_admins"
	KeyNotifications = "nazzy_notifications"
	KeySettings      = "site_settings"
)

// Event signals that a key changed in the shared store. Only the key is
// carried: consumers re-read the store, never trust a payload.
type Event struct {
	Key string
}

// Store is one tab's handle on the shared origin store.
//
// Subscribe delivers events for writes made through OTHER handles on the same
// origin store, never for this handle's own writes. A tab that mutates the
// store must refresh its own view explicitly.
type Store interface {
	Get(ctx context.Context, key string) (raw string, ok bool, err error)
	Set(ctx context.Context, key, raw string) error
	Delete(ctx context.Context, key string) error
	Subscribe(fn func(Event)) (unsubscribe func())
	Close() error
}

// Load reads and decodes the value under key. Missing keys, backend errors,
// and malformed or null JSON all resolve to def; Load never fails upward.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok || raw == "" || raw == "null" {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// Save encodes v and persists it under key, replacing any prior value.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(raw))
}

// change is the broadcast payload the redis and postgres adapters put on the
// wire. Writer carries the writing handle's id so receivers can drop their
// own echoes.
type change struct {
	Key    string `json:"key"`
	Writer string `json:"writer"`
}

// fanout is the subscriber registry shared by all adapters.
type fanout struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Event)
}

func newFanout() *fanout {
	return &fanout{subs: make(map[int]func(Event))}
}

func (f *fanout) subscribe(fn func(Event)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *fanout) emit(ev Event) {
	f.mu.Lock()
	fns := make([]func(Event), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
