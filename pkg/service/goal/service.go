// Package goal computes and caches each user's progress toward their
// retirement savings goal.
package goal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/cache"
	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/repository"
)

const (
	divisionScale   = 4
	percentageScale = 2
)

var oneHundred = decimal.NewFromInt(100)

type Service struct {
	store  cache.Store
	uow    repository.UnitOfWork
	ttl    time.Duration
	logger *slog.Logger
}

func New(store cache.Store, uow repository.UnitOfWork, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{store: store, uow: uow, ttl: ttl, logger: logger.With("service", "goal")}
}

// CalculateGoal computes the percentage of the retirement savings goal
// achieved from the user's accounts' net amounts, caches it, and returns it.
//
// Total savings needed is the desired monthly income times the retirement
// duration in whole months; achieved is the sum of net amounts, with unset
// amounts counting as zero. The resulting percentage is rounded half-up to
// two decimal places after a four-decimal-place division.
func (s *Service) CalculateGoal(ctx context.Context, detail *domain.RetirementDetail) (*domain.RetirementGoal, error) {
	if detail == nil {
		return nil, fmt.Errorf("%w: insufficient retirement information to calculate goal", domain.ErrInvalidOperation)
	}
	accounts, err := s.uow.AccountRepository().ListByUser(ctx, detail.UserID)
	if err != nil {
		return nil, err
	}
	return s.calculate(ctx, detail, accounts, false)
}

// CalculateGoalWithAccounts is the variant operating on an explicit account
// list, used when recalculating straight from a retirement-detail edit. It
// falls back to the gross amount for accounts whose net amount has not been
// derived yet.
func (s *Service) CalculateGoalWithAccounts(
	ctx context.Context,
	detail *domain.RetirementDetail,
	accounts []*domain.Account,
) (*domain.RetirementGoal, error) {
	if detail == nil {
		return nil, fmt.Errorf("%w: insufficient retirement information to calculate goal", domain.ErrInvalidOperation)
	}
	return s.calculate(ctx, detail, accounts, true)
}

func (s *Service) calculate(
	ctx context.Context,
	detail *domain.RetirementDetail,
	accounts []*domain.Account,
	grossFallback bool,
) (*domain.RetirementGoal, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: insufficient retirement information to calculate goal", domain.ErrInvalidOperation)
	}

	months, err := detail.DurationInMonths()
	if err != nil {
		return nil, err
	}
	if detail.IncomePerMonthDesired.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: desired retirement income must be greater than zero", domain.ErrInvalidOperation)
	}

	needed := detail.TotalSavingsNeeded(months)
	achieved := totalNetSavings(accounts, grossFallback)
	percentage := achieved.DivRound(needed, divisionScale).Mul(oneHundred).Round(percentageScale)

	retirementGoal := &domain.RetirementGoal{UserID: detail.UserID, GoalPercentage: percentage}
	if err := s.SaveGoal(ctx, retirementGoal); err != nil {
		return nil, err
	}
	return retirementGoal, nil
}

// totalNetSavings sums the accounts' net amounts, skipping unset values. An
// all-unset account list sums to zero rather than failing. With grossFallback
// set, an account without a net amount contributes its gross amount instead.
func totalNetSavings(accounts []*domain.Account, grossFallback bool) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		switch {
		case account.AmountNet.Valid:
			total = total.Add(account.AmountNet.Decimal)
		case grossFallback && account.Amount.Valid:
			total = total.Add(account.Amount.Decimal)
		}
	}
	return total
}

// SaveGoal overwrites the cached goal for the goal's user. There is no
// partial update.
func (s *Service) SaveGoal(ctx context.Context, retirementGoal *domain.RetirementGoal) error {
	if retirementGoal == nil {
		return fmt.Errorf("%w: retirement goal is nil", domain.ErrInvalidOperation)
	}
	data, err := json.Marshal(retirementGoal)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, retirementGoal.Key(), data, s.ttl)
}

// GetGoal reads the cached goal for a user.
func (s *Service) GetGoal(ctx context.Context, userID uuid.UUID) (*domain.RetirementGoal, error) {
	data, err := s.store.Get(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: retirement goal for user %s", domain.ErrNotFound, userID)
	}
	var retirementGoal domain.RetirementGoal
	if err := json.Unmarshal(data, &retirementGoal); err != nil {
		return nil, err
	}
	return &retirementGoal, nil
}

// RecalculateForUser recomputes the goal from the user's stored accounts. A
// user without a retirement detail is not an error: the chain terminates with
// a warning.
func (s *Service) RecalculateForUser(ctx context.Context, userID uuid.UUID) error {
	detail, err := s.uow.RetirementRepository().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("retirement detail not found for user", "user_id", userID)
			return nil
		}
		return err
	}
	if _, err := s.CalculateGoal(ctx, detail); err != nil {
		return err
	}
	s.logger.Info("retirement goal calculated", "user_id", userID)
	return nil
}

// RecalculateFromDetailUpdate recomputes the goal right after a
// retirement-detail edit, using the currently cached net amounts and falling
// back to gross amounts where no net amount exists yet.
func (s *Service) RecalculateFromDetailUpdate(ctx context.Context, userID uuid.UUID) error {
	detail, err := s.uow.RetirementRepository().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("retirement detail not found for user", "user_id", userID)
			return nil
		}
		return err
	}
	accounts, err := s.uow.AccountRepository().ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.CalculateGoalWithAccounts(ctx, detail, accounts); err != nil {
		return err
	}
	s.logger.Info("retirement goal calculated", "user_id", userID)
	return nil
}
