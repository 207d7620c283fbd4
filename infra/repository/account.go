package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/repository"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository on the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return mapModelToAccount(&m), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	var models []Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, mapModelToAccount(&models[i]))
	}
	return accounts, nil
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	m := mapAccountToModel(account)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	m := mapAccountToModel(account)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *accountRepository) SaveAll(ctx context.Context, accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	models := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		models = append(models, mapAccountToModel(account))
	}
	return r.db.WithContext(ctx).Save(&models).Error
}

func (r *accountRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id).Error
}

type accountHistoryRepository struct {
	db *gorm.DB
}

// NewAccountHistoryRepository creates a history repository on the given
// session.
func NewAccountHistoryRepository(db *gorm.DB) repository.AccountHistoryRepository {
	return &accountHistoryRepository{db: db}
}

func (r *accountHistoryRepository) Create(ctx context.Context, history *domain.AccountHistory) error {
	m := mapHistoryToModel(history)
	return r.db.WithContext(ctx).Create(&m).Error
}
