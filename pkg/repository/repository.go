// Package repository defines the persistence contracts the services depend
// on. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/domain/events"
)

// AccountRepository is keyed CRUD over accounts plus a secondary index by
// owning user.
type AccountRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	// SaveAll persists a batch of updated accounts in one operation.
	SaveAll(ctx context.Context, accounts []*domain.Account) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountHistoryRepository stores immutable balance snapshots. The core never
// mutates or deletes them.
type AccountHistoryRepository interface {
	Create(ctx context.Context, history *domain.AccountHistory) error
}

// RetirementRepository stores retirement details, at most one per user.
type RetirementRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.RetirementDetail, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RetirementDetail, error)
	Create(ctx context.Context, detail *domain.RetirementDetail) error
	Update(ctx context.Context, detail *domain.RetirementDetail) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository stores users, with a unique username and a paginated
// secondary index by country used by the scan fan-out.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByCountry returns one page of users for a country and whether more
	// pages remain.
	ListByCountry(ctx context.Context, country domain.Country, limit, offset int) ([]*domain.User, bool, error)
}

// UnitOfWork provides a transaction boundary, repository access bound to that
// transaction, and after-commit event delivery.
//
// Events given to Publish inside Do are emitted on the event bus only after
// the transaction commits. If the transaction rolls back they are dropped and
// never fire.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. fn receives a UnitOfWork
	// whose repositories share the transaction session. A non-nil error rolls
	// the transaction back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Publish queues an event for delivery after the enclosing transaction
	// commits.
	Publish(e events.Event)

	AccountRepository() AccountRepository
	AccountHistoryRepository() AccountHistoryRepository
	RetirementRepository() RetirementRepository
	UserRepository() UserRepository
}
