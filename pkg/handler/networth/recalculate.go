// Package networth handles net-worth recalculation triggers.
package networth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/service/account"
)

// HandleRecalculationRequested recomputes the net amounts of every account of
// the event's user.
func HandleRecalculationRequested(svc *account.Service, logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		logger := logger.With("handler", "networth.HandleRecalculationRequested")
		ev, ok := e.(events.NetWorthRecalculationRequested)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		logger.Debug("received event", "user_id", ev.UserID, "source", ev.Source)
		return svc.RecalculateNetAmountPerUser(ctx, ev.UserID)
	}
}
