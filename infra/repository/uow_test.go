package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	infra_eventbus "github.com/moneta-app/moneta/infra/eventbus"
	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/repository"
)

func newMockUoW(t *testing.T) (*UoW, sqlmock.Sqlmock, *infra_eventbus.MemoryEventBus) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := infra_eventbus.NewWithMemory(logger)
	return NewUoW(db, bus, logger), mock, bus
}

func TestUoW_Repositories(t *testing.T) {
	uow, _, _ := newMockUoW(t)

	assert.IsType(t, &accountRepository{}, uow.AccountRepository())
	assert.IsType(t, &accountHistoryRepository{}, uow.AccountHistoryRepository())
	assert.IsType(t, &retirementRepository{}, uow.RetirementRepository())
	assert.IsType(t, &userRepository{}, uow.UserRepository())
}

func TestUoW_Do_EmitsPublishedEventsAfterCommit(t *testing.T) {
	uow, mock, bus := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	var publishedDuringTx int
	err := uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		tx.Publish(events.NetWorthRecalculationRequested{
			UserID: userID,
			Source: events.SourceDeposit,
		})
		publishedDuringTx = len(bus.Published())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, publishedDuringTx, "events must not fire before commit")
	published := bus.Published()
	require.Len(t, published, 1)
	e, ok := published[0].(events.NetWorthRecalculationRequested)
	require.True(t, ok)
	assert.Equal(t, userID, e.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_Do_RollbackDropsPublishedEvents(t *testing.T) {
	uow, mock, bus := newMockUoW(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	failure := errors.New("write failed")
	err := uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		tx.Publish(events.RetirementGoalRecalculationRequested{
			UserID: uuid.New(),
			Source: events.SourceNetRecalculation,
		})
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.Empty(t, bus.Published(), "rolled-back events must never fire")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_PublishOutsideTransactionEmitsImmediately(t *testing.T) {
	uow, _, bus := newMockUoW(t)

	uow.Publish(events.RetirementDetailUpdated{
		UserID: uuid.New(),
		Source: events.SourceRetirementUpdate,
	})

	assert.Len(t, bus.Published(), 1)
}
