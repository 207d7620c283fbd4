package eventbus

import (
	"context"

	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/repository"
)

// Deliver routes an event according to its source tag. Scan-driven events are
// emitted immediately, outside any transaction boundary. Events from every
// other source are queued on the unit of work and emitted only after it
// commits; a rollback drops them.
func Deliver(ctx context.Context, uow repository.UnitOfWork, bus Bus, e events.Event) error {
	if s, ok := e.(events.Sourced); ok && s.EventSource() == events.SourceScan {
		return bus.Emit(ctx, e)
	}
	uow.Publish(e)
	return nil
}
