// Package eventbus provides the in-process event bus implementation.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/eventbus"
)

// MemoryEventBus is a synchronous in-memory implementation of eventbus.Bus.
// Handlers run inline on the emitting goroutine, so a per-user recalculation
// chain observes the writes of its preceding step. A failing handler is
// logged and does not block the remaining handlers.
type MemoryEventBus struct {
	handlers map[string][]eventbus.HandlerFunc
	mu       sync.RWMutex
	logger   *slog.Logger

	published []events.Event // recorded for tests
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[string][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// Register adds a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, e events.Event) error {
	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[e.Type()]...)
	b.mu.RUnlock()

	b.mu.Lock()
	b.published = append(b.published, e)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, e); err != nil {
			b.logger.Error("event handler failed", "type", e.Type(), "error", err)
		}
	}
	return nil
}

// Published returns the events emitted so far. Useful for tests.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event{}, b.published...)
}

// ClearPublished resets the recorded events. Useful for tests.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
