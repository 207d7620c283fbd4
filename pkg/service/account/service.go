// Package account provides account CRUD, deposits, and the inflation-driven
// net-worth recalculation.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/dto"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/repository"
	"github.com/shopspring/decimal"
)

// InflationRates resolves the latest cached inflation rate for a country.
type InflationRates interface {
	LatestMonthlyRate(ctx context.Context, country domain.Country) (*domain.InflationRate, error)
}

type Service struct {
	bus       eventbus.Bus
	uow       repository.UnitOfWork
	inflation InflationRates
	logger    *slog.Logger
}

func New(
	bus eventbus.Bus,
	uow repository.UnitOfWork,
	inflation InflationRates,
	logger *slog.Logger,
) *Service {
	return &Service{
		bus:       bus,
		uow:       uow,
		inflation: inflation,
		logger:    logger.With("service", "account"),
	}
}

// Create opens an account for the named user with a gross amount only. The
// net amount stays unset until the first successful recalculation, which is
// triggered after the creating transaction commits.
func (s *Service) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	owner, err := s.uow.UserRepository().GetByUsername(ctx, create.Username)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:     uuid.New(),
		Amount: create.Amount,
		Type:   create.Type,
		Date:   time.Now(),
		UserID: owner.ID,
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.AccountRepository().Create(ctx, account); err != nil {
			return err
		}
		return eventbus.Deliver(ctx, uow, s.bus, events.NetWorthRecalculationRequested{
			UserID: owner.ID,
			Source: events.SourceAccountCreation,
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account created", "account_id", account.ID, "user_id", owner.ID)
	return dto.NewAccountRead(account), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	account, err := s.uow.AccountRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewAccountRead(account), nil
}

// Update changes the account type. Gross amounts are only ever mutated by
// deposits and net amounts only by recalculation, so neither is updatable
// here.
func (s *Service) Update(ctx context.Context, id uuid.UUID, accountType domain.AccountType) (*dto.AccountRead, error) {
	var account *domain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		account, err = uow.AccountRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		account.Type = accountType
		return uow.AccountRepository().Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewAccountRead(account), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.AccountRepository().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
		}
		return uow.AccountRepository().Delete(ctx, id)
	})
}

// Deposit adds a positive amount to the account's gross balance. A history
// snapshot of the pre-deposit state is persisted in the same transaction, and
// a net-worth recalculation trigger is delivered after commit.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount decimal.NullDecimal) (*dto.AccountRead, error) {
	var account *domain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		account, err = uow.AccountRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		history, err := account.Deposit(amount)
		if err != nil {
			return err
		}
		if err := uow.AccountRepository().Update(ctx, account); err != nil {
			return err
		}
		if err := uow.AccountHistoryRepository().Create(ctx, history); err != nil {
			return err
		}
		return eventbus.Deliver(ctx, uow, s.bus, events.NetWorthRecalculationRequested{
			UserID: account.UserID,
			Source: events.SourceDeposit,
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("deposit applied", "account_id", id, "user_id", account.UserID)
	return dto.NewAccountRead(account), nil
}

// RecalculateNetAmountPerUser applies the latest cached inflation rate for
// the user's country to every account of that user, persisting the adjusted
// net amounts in one batch and then triggering a retirement-goal
// recalculation.
//
// No cached rate is a legitimate nothing-to-do state: the accounts stay
// untouched and no downstream trigger fires. With a rate present the goal
// trigger fires even for a user without accounts; rejecting empty input is
// the goal calculator's concern.
func (s *Service) RecalculateNetAmountPerUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.uow.UserRepository().Get(ctx, userID)
	if err != nil {
		return err
	}

	rate, err := s.inflation.LatestMonthlyRate(ctx, user.Country)
	if err != nil {
		return err
	}
	if rate == nil {
		s.logger.Info("no inflation rate found, leaving account amounts unchanged",
			"country", user.Country, "user_id", userID)
		return nil
	}

	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, account := range accounts {
			account.ApplyInflation(rate)
		}
		if err := uow.AccountRepository().SaveAll(ctx, accounts); err != nil {
			return err
		}
		return eventbus.Deliver(ctx, uow, s.bus, events.RetirementGoalRecalculationRequested{
			UserID: userID,
			Source: events.SourceNetRecalculation,
		})
	})
}
