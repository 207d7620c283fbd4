// Package retirement provides CRUD over retirement details.
package retirement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/domain/events"
	"github.com/moneta-app/moneta/pkg/dto"
	"github.com/moneta-app/moneta/pkg/eventbus"
	"github.com/moneta-app/moneta/pkg/repository"
)

type Service struct {
	bus    eventbus.Bus
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(bus eventbus.Bus, uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{bus: bus, uow: uow, logger: logger.With("service", "retirement")}
}

func validateDates(detail *domain.RetirementDetail) error {
	if !detail.LifeExpectation.After(detail.RetirementDate) {
		return fmt.Errorf("%w: life expectation must be after retirement date", domain.ErrInvalidOperation)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, create dto.RetirementDetailCreate) (*dto.RetirementDetailRead, error) {
	owner, err := s.uow.UserRepository().GetByUsername(ctx, create.Username)
	if err != nil {
		return nil, err
	}

	detail := &domain.RetirementDetail{
		ID:                    uuid.New(),
		IncomePerMonthDesired: create.IncomePerMonthDesired,
		RetirementDate:        create.RetirementDate,
		LifeExpectation:       create.LifeExpectation,
		UserID:                owner.ID,
	}
	if err := validateDates(detail); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.RetirementRepository().Create(ctx, detail)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("retirement detail created", "detail_id", detail.ID, "user_id", owner.ID)
	return dto.NewRetirementDetailRead(detail), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.RetirementDetailRead, error) {
	detail, err := s.uow.RetirementRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRetirementDetailRead(detail), nil
}

// Update replaces the retirement target and, after the transaction commits,
// triggers a goal recalculation from the currently cached net amounts.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update dto.RetirementDetailUpdate) (*dto.RetirementDetailRead, error) {
	var detail *domain.RetirementDetail
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		detail, err = uow.RetirementRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		detail.IncomePerMonthDesired = update.IncomePerMonthDesired
		detail.RetirementDate = update.RetirementDate
		detail.LifeExpectation = update.LifeExpectation
		if err := validateDates(detail); err != nil {
			return err
		}
		if err := uow.RetirementRepository().Update(ctx, detail); err != nil {
			return err
		}
		return eventbus.Deliver(ctx, uow, s.bus, events.RetirementDetailUpdated{
			UserID: detail.UserID,
			Source: events.SourceRetirementUpdate,
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("retirement detail updated", "detail_id", id, "user_id", detail.UserID)
	return dto.NewRetirementDetailRead(detail), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.RetirementRepository().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: retirement detail %s", domain.ErrNotFound, id)
		}
		return uow.RetirementRepository().Delete(ctx, id)
	})
}
