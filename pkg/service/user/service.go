// Package user provides CRUD over users.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/dto"
	"github.com/moneta-app/moneta/pkg/repository"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger.With("service", "user")}
}

func (s *Service) Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error) {
	if !create.Country.Valid() {
		return nil, fmt.Errorf("%w: unsupported country %q", domain.ErrInvalidOperation, create.Country)
	}
	user := &domain.User{
		ID:       uuid.New(),
		Username: create.Username,
		Country:  create.Country,
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.UserRepository().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", "user_id", user.ID, "country", user.Country)
	return dto.NewUserRead(user), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	user, err := s.uow.UserRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserRead(user), nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	user, err := s.uow.UserRepository().GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return dto.NewUserRead(user), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, create dto.UserCreate) (*dto.UserRead, error) {
	if !create.Country.Valid() {
		return nil, fmt.Errorf("%w: unsupported country %q", domain.ErrInvalidOperation, create.Country)
	}
	user := &domain.User{ID: id, Username: create.Username, Country: create.Country}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.UserRepository().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
		}
		return uow.UserRepository().Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewUserRead(user), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.UserRepository().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
		}
		return uow.UserRepository().Delete(ctx, id)
	})
}
