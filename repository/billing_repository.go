package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/utils"
)

// BillingRepository provides access to billing records and their service items.
type BillingRepository interface {
	Create(ctx context.Context, billing *models.Billing) error
	FindByID(ctx context.Context, id uint) (*models.Billing, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Billing, error)
	FindByProviderName(ctx context.Context, providerName string) ([]models.Billing, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.Billing, error)
	FindByPaymentStatus(ctx context.Context, status models.PaymentStatus) ([]models.Billing, error)
	FindUnlinked(ctx context.Context) ([]models.Billing, error)
	CountLinked(ctx context.Context) (int64, error)
	Save(ctx context.Context, billing *models.Billing) error
}

type gormBillingRepository struct {
	db *gorm.DB
}

func NewGormBillingRepository(db *gorm.DB) BillingRepository {
	return &gormBillingRepository{db: db}
}

func (r *gormBillingRepository) Create(ctx context.Context, billing *models.Billing) error {
	return r.db.WithContext(ctx).Create(billing).Error
}

func (r *gormBillingRepository) FindByID(ctx context.Context, id uint) (*models.Billing, error) {
	var billing models.Billing
	if err := r.db.WithContext(ctx).Preload("Services").First(&billing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("billing record not found with id: %d", id)
		}
		return nil, err
	}
	return &billing, nil
}

func (r *gormBillingRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.WithContext(ctx).Preload("Services").
		Where("user_id = ?", userID).Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *gormBillingRepository) FindByProviderName(ctx context.Context, providerName string) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.WithContext(ctx).Preload("Services").
		Where("provider_name = ?", providerName).Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *gormBillingRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.WithContext(ctx).Preload("Services").
		Where("appointment_id = ?", appointmentID).Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *gormBillingRepository) FindByPaymentStatus(ctx context.Context, status models.PaymentStatus) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.WithContext(ctx).Preload("Services").
		Where("payment_status = ?", status).Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

// FindUnlinked returns billing rows that have no appointment reference, the
// input set for the link-repair operation.
func (r *gormBillingRepository) FindUnlinked(ctx context.Context) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.WithContext(ctx).
		Where("appointment_id IS NULL").Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *gormBillingRepository) CountLinked(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Billing{}).
		Where("appointment_id IS NOT NULL").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *gormBillingRepository) Save(ctx context.Context, billing *models.Billing) error {
	return r.db.WithContext(ctx).Save(billing).Error
}
