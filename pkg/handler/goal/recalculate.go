// Package goal handles retirement-goal recalculation triggers.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/service/goal"
)

// HandleRecalculationRequested recomputes the goal percentage after a
// net-worth recalculation has written fresh net amounts.
func HandleRecalculationRequested(svc *goal.Service, logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		logger := logger.With("handler", "goal.HandleRecalculationRequested")
		ev, ok := e.(events.RetirementGoalRecalculationRequested)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		logger.Debug("received event", "user_id", ev.UserID, "source", ev.Source)
		return svc.RecalculateForUser(ctx, ev.UserID)
	}
}

// HandleDetailUpdated recomputes the goal straight from a retirement-detail
// edit, bypassing net-worth recalculation.
func HandleDetailUpdated(svc *goal.Service, logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		logger := logger.With("handler", "goal.HandleDetailUpdated")
		ev, ok := e.(events.RetirementDetailUpdated)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		logger.Debug("received event", "user_id", ev.UserID)
		return svc.RecalculateFromDetailUpdate(ctx, ev.UserID)
	}
}
