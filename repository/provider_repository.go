package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/utils"
)

// ProviderRepository provides access to garage accounts.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	FindAll(ctx context.Context) ([]models.Provider, error)
	FindByID(ctx context.Context, id uint) (*models.Provider, error)
	FindByOwnerName(ctx context.Context, ownerName string) (*models.Provider, error)
	Save(ctx context.Context, provider *models.Provider) error
}

type gormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) ProviderRepository {
	return &gormProviderRepository{db: db}
}

func (r *gormProviderRepository) Create(ctx context.Context, provider *models.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *gormProviderRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	if err := r.db.WithContext(ctx).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *gormProviderRepository) FindByID(ctx context.Context, id uint) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("provider not found with id: %d", id)
		}
		return nil, err
	}
	return &provider, nil
}

// FindByOwnerName returns the first provider with the given owner name. Owner
// names are not unique; id lookup is the primary path and this exists for the
// login and password-reset flows which key on owner name.
func (r *gormProviderRepository) FindByOwnerName(ctx context.Context, ownerName string) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.WithContext(ctx).Where("owner_name = ?", ownerName).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("provider not found with owner name: %s", ownerName)
		}
		return nil, err
	}
	return &provider, nil
}

func (r *gormProviderRepository) Save(ctx context.Context, provider *models.Provider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}
