// Package eventbus defines the contract for publishing and subscribing to
// domain events.
package eventbus

import (
	"context"

	"github.com/moneta-app/moneta/pkg/domain/events"
)

// HandlerFunc processes a single event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus routes events to the handlers registered for their type.
type Bus interface {
	// Register adds a handler for a specific event type.
	Register(eventType string, handler HandlerFunc)
	// Emit dispatches the event to all registered handlers for its type.
	Emit(ctx context.Context, e events.Event) error
}
