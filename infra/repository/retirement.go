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

type retirementRepository struct {
	db *gorm.DB
}

// NewRetirementRepository creates a retirement-detail repository on the given
// session.
func NewRetirementRepository(db *gorm.DB) repository.RetirementRepository {
	return &retirementRepository{db: db}
}

func (r *retirementRepository) Get(ctx context.Context, id uuid.UUID) (*domain.RetirementDetail, error) {
	var m RetirementDetail
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: retirement detail %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return mapModelToDetail(&m), nil
}

func (r *retirementRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RetirementDetail, error) {
	var m RetirementDetail
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: retirement detail for user %s", domain.ErrNotFound, userID)
		}
		return nil, err
	}
	return mapModelToDetail(&m), nil
}

func (r *retirementRepository) Create(ctx context.Context, detail *domain.RetirementDetail) error {
	m := mapDetailToModel(detail)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *retirementRepository) Update(ctx context.Context, detail *domain.RetirementDetail) error {
	m := mapDetailToModel(detail)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *retirementRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RetirementDetail{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *retirementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&RetirementDetail{}, "id = ?", id).Error
}
