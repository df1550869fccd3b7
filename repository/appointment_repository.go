package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/utils"
)

// AppointmentRepository provides access to appointments. List methods return an
// empty slice when nothing matches; absence is only an error for id lookups.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByProviderID(ctx context.Context, providerID uint) ([]models.Appointment, error)
	FindByProviderOwnerName(ctx context.Context, ownerName string) ([]models.Appointment, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Appointment, error)
	FindByVehicle(ctx context.Context, vehicleName, vehicleNumber string) ([]models.Appointment, error)
	Save(ctx context.Context, appointment *models.Appointment) error
}

type gormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &gormAppointmentRepository{db: db}
}

func (r *gormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *gormAppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).Preload("User").Preload("Provider").First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("appointment not found with id: %d", id)
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *gormAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Preload("User").Preload("Provider").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *gormAppointmentRepository) FindByProviderID(ctx context.Context, providerID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Preload("User").Preload("Provider").
		Where("provider_id = ?", providerID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByProviderOwnerName is a deprecated compatibility path: owner names are
// not unique, so this fans out across every provider sharing the name.
func (r *gormAppointmentRepository) FindByProviderOwnerName(ctx context.Context, ownerName string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Preload("User").Preload("Provider").
		Joins("JOIN providers ON providers.id = appointments.provider_id").
		Where("providers.owner_name = ?", ownerName).
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *gormAppointmentRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Preload("Provider").
		Where("user_id = ?", userID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *gormAppointmentRepository) FindByVehicle(ctx context.Context, vehicleName, vehicleNumber string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("vehicle_name = ? AND vehicle_number = ?", vehicleName, vehicleNumber).
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *gormAppointmentRepository) Save(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}
