package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Hub is an in-process origin store. Every handle obtained via Tab shares the
// same data; a write made through one handle is broadcast to all the others.
// It backs single-process runs and the cross-tab tests.
type Hub struct {
	mu   sync.RWMutex
	data map[string]string
	tabs map[string]*memoryTab
}

func NewHub() *Hub {
	return &Hub{
		data: make(map[string]string),
		tabs: make(map[string]*memoryTab),
	}
}

// Tab attaches a new handle to the hub.
func (h *Hub) Tab() Store {
	t := &memoryTab{
		id:     uuid.New().String(),
		hub:    h,
		fanout: newFanout(),
	}
	h.mu.Lock()
	h.tabs[t.id] = t
	h.mu.Unlock()
	return t
}

func (h *Hub) set(writer, key, raw string) {
	h.mu.Lock()
	h.data[key] = raw
	h.mu.Unlock()
	h.broadcast(writer, key)
}

func (h *Hub) delete(writer, key string) {
	h.mu.Lock()
	delete(h.data, key)
	h.mu.Unlock()
	h.broadcast(writer, key)
}

func (h *Hub) broadcast(writer, key string) {
	h.mu.RLock()
	others := make([]*memoryTab, 0, len(h.tabs))
	for id, t := range h.tabs {
		if id != writer {
			others = append(others, t)
		}
	}
	h.mu.RUnlock()

	for _, t := range others {
		t.fanout.emit(Event{Key: key})
	}
}

type memoryTab struct {
	id     string
	hub    *Hub
	fanout *fanout
}

func (t *memoryTab) Get(_ context.Context, key string) (string, bool, error) {
	t.hub.mu.RLock()
	raw, ok := t.hub.data[key]
	t.hub.mu.RUnlock()
	return raw, ok, nil
}

func (t *memoryTab) Set(_ context.Context, key, raw string) error {
	t.hub.set(t.id, key, raw)
	return nil
}

func (t *memoryTab) Delete(_ context.Context, key string) error {
	t.hub.delete(t.id, key)
	return nil
}

func (t *memoryTab) Subscribe(fn func(Event)) func() {
	return t.fanout.subscribe(fn)
}

func (t *memoryTab) Close() error {
	t.hub.mu.Lock()
	delete(t.hub.tabs, t.id)
	t.hub.mu.Unlock()
	return nil
}
