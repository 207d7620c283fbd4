package app

import (
	"github.com/moneta-app/moneta/pkg/domain/events"
	goalhandler "github.com/moneta-app/moneta/pkg/handler/goal"
	"github.com/moneta-app/moneta/pkg/handler/networth"
)

// setupEventBus registers all event handlers with the bus. Net-worth
// recalculation chains into goal recalculation; retirement-detail updates go
// to the goal calculator directly.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	logger := a.Deps.Logger

	bus.Register(
		events.EventTypeNetWorthRecalculationRequested,
		networth.HandleRecalculationRequested(a.AccountService, logger),
	)
	bus.Register(
		events.EventTypeRetirementGoalRecalculationRequested,
		goalhandler.HandleRecalculationRequested(a.GoalService, logger),
	)
	bus.Register(
		events.EventTypeRetirementDetailUpdated,
		goalhandler.HandleDetailUpdated(a.GoalService, logger),
	)
}
