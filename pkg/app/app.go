// Package app assembles the services and wires the event bus.
package app

import (
	"log/slog"

	"github.com/moneta-app/moneta/pkg/cache"
	"github.com/moneta-app/moneta/pkg/config"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/provider"
	"github.com/moneta-app/moneta/pkg/repository"
	"github.com/moneta-app/moneta/pkg/service/account"
	goalsvc "github.com/moneta-app/moneta/pkg/service/goal"
	"github.com/moneta-app/moneta/pkg/service/inflation"
	"github.com/moneta-app/moneta/pkg/service/retirement"
	"github.com/moneta-app/moneta/pkg/service/user"
)

// Deps contains the infrastructure dependencies the application is built
// from. A top-level assembly routine constructs them once at process start.
type Deps struct {
	Uow             repository.UnitOfWork
	EventBus        eventbus.Bus
	InflationStore  cache.Store
	GoalStore       cache.Store
	InflationSource provider.InflationSource
	Logger          *slog.Logger
}

type App struct {
	Deps              *Deps
	Config            *config.App
	UserService       *user.Service
	AccountService    *account.Service
	RetirementService *retirement.Service
	GoalService       *goalsvc.Service
	InflationService  *inflation.Service
}

func New(deps *Deps, cfg *config.App) *App {
	a := &App{Deps: deps, Config: cfg}

	a.UserService = user.New(deps.Uow, deps.Logger)
	a.GoalService = goalsvc.New(deps.GoalStore, deps.Uow, cfg.GoalTTL(), deps.Logger)
	a.InflationService = inflation.New(
		deps.InflationSource,
		deps.InflationStore,
		deps.Uow.UserRepository(),
		deps.EventBus,
		deps.Logger,
	)
	a.AccountService = account.New(deps.EventBus, deps.Uow, a.InflationService, deps.Logger)
	a.RetirementService = retirement.New(deps.EventBus, deps.Uow, deps.Logger)

	a.setupEventBus()
	return a
}
