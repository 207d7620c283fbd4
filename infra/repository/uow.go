package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/repository"
)

// UoW implements repository.UnitOfWork on gorm. Repositories obtained from a
// UoW passed into Do share the transaction session, so all writes inside one
// Do call commit or roll back together.
//
// Events queued with Publish inside Do are emitted on the bus only after the
// transaction commits. A rollback drops them, so downstream recalculation
// never observes writes that were never committed.
type UoW struct {
	db      *gorm.DB
	tx      *gorm.DB
	bus     eventbus.Bus
	logger  *slog.Logger
	pending *[]events.Event
}

// NewUoW creates the root unit of work for the given database handle.
func NewUoW(db *gorm.DB, bus eventbus.Bus, logger *slog.Logger) *UoW {
	return &UoW{db: db, bus: bus, logger: logger.With("component", "uow")}
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do executes fn within a transaction and, on commit, emits the events fn
// queued via Publish.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	var pending []events.Event
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txUow := &UoW{db: u.db, tx: tx, bus: u.bus, logger: u.logger, pending: &pending}
		return fn(txUow)
	})
	if err != nil {
		return err
	}
	for _, e := range pending {
		if err := u.bus.Emit(ctx, e); err != nil {
			u.logger.Error("failed to emit event after commit", "type", e.Type(), "error", err)
		}
	}
	return nil
}

// Publish queues an event for delivery after the enclosing transaction
// commits. Outside a transaction the event is emitted immediately.
func (u *UoW) Publish(e events.Event) {
	if u.pending == nil {
		if err := u.bus.Emit(context.Background(), e); err != nil {
			u.logger.Error("failed to emit event", "type", e.Type(), "error", err)
		}
		return
	}
	*u.pending = append(*u.pending, e)
}

func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.session())
}

func (u *UoW) AccountHistoryRepository() repository.AccountHistoryRepository {
	return NewAccountHistoryRepository(u.session())
}

func (u *UoW) RetirementRepository() repository.RetirementRepository {
	return NewRetirementRepository(u.session())
}

func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.session())
}

var _ repository.UnitOfWork = (*UoW)(nil)
