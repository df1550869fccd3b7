package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/utils"
)

// ServiceDetailsRepository provides access to persisted service timelines.
type ServiceDetailsRepository interface {
	Create(ctx context.Context, details *models.ServiceDetails) error
	FindByID(ctx context.Context, id uint) (*models.ServiceDetails, error)
	FindByUsername(ctx context.Context, username string) ([]models.ServiceDetails, error)
}

type gormServiceDetailsRepository struct {
	db *gorm.DB
}

func NewGormServiceDetailsRepository(db *gorm.DB) ServiceDetailsRepository {
	return &gormServiceDetailsRepository{db: db}
}

func (r *gormServiceDetailsRepository) Create(ctx context.Context, details *models.ServiceDetails) error {
	return r.db.WithContext(ctx).Create(details).Error
}

func (r *gormServiceDetailsRepository) FindByID(ctx context.Context, id uint) (*models.ServiceDetails, error) {
	var details models.ServiceDetails
	if err := r.db.WithContext(ctx).Preload("Updates").First(&details, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("service record not found with id: %d", id)
		}
		return nil, err
	}
	return &details, nil
}

func (r *gormServiceDetailsRepository) FindByUsername(ctx context.Context, username string) ([]models.ServiceDetails, error) {
	var details []models.ServiceDetails
	if err := r.db.WithContext(ctx).Preload("Updates").
		Where("username = ?", username).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}
