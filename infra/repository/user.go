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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository on the given session.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return mapModelToUser(&m), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", domain.ErrNotFound, username)
		}
		return nil, err
	}
	return mapModelToUser(&m), nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	m := mapUserToModel(user)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	m := mapUserToModel(user)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

// ListByCountry returns one page of users for a country, ordered by id for a
// stable pagination, and whether more pages remain. It fetches limit+1 rows
// to detect the next page without a count query.
func (r *userRepository) ListByCountry(
	ctx context.Context,
	country domain.Country,
	limit, offset int,
) ([]*domain.User, bool, error) {
	var models []User
	err := r.db.WithContext(ctx).
		Where("country = ?", string(country)).
		Order("id").
		Limit(limit + 1).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := len(models) > limit
	if hasMore {
		models = models[:limit]
	}
	users := make([]*domain.User, 0, len(models))
	for i := range models {
		users = append(users, mapModelToUser(&models[i]))
	}
	return users, hasMore, nil
}
