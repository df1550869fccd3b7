package services_test

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/utils"
)

// ---- in-memory user repository ----

type fakeUserRepo struct {
	nextID uint
	users  []models.User
}

func (f *fakeUserRepo) add(user models.User) *models.User {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return &f.users[len(f.users)-1]
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, utils.NotFoundf("user not found with id: %d", id)
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, utils.NotFoundf("user not found with username: %s", username)
}

func (f *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- in-memory provider repository ----

type fakeProviderRepo struct {
	nextID    uint
	providers []models.Provider
}

func (f *fakeProviderRepo) add(provider models.Provider) *models.Provider {
	f.nextID++
	provider.ID = f.nextID
	f.providers = append(f.providers, provider)
	return &f.providers[len(f.providers)-1]
}

func (f *fakeProviderRepo) Create(_ context.Context, provider *models.Provider) error {
	f.nextID++
	provider.ID = f.nextID
	f.providers = append(f.providers, *provider)
	return nil
}

func (f *fakeProviderRepo) FindAll(_ context.Context) ([]models.Provider, error) {
	out := make([]models.Provider, len(f.providers))
	copy(out, f.providers)
	return out, nil
}

func (f *fakeProviderRepo) FindByID(_ context.Context, id uint) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].ID == id {
			provider := f.providers[i]
			return &provider, nil
		}
	}
	return nil, utils.NotFoundf("provider not found with id: %d", id)
}

func (f *fakeProviderRepo) FindByOwnerName(_ context.Context, ownerName string) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].OwnerName == ownerName {
			provider := f.providers[i]
			return &provider, nil
		}
	}
	return nil, utils.NotFoundf("provider not found with owner name: %s", ownerName)
}

func (f *fakeProviderRepo) Save(_ context.Context, provider *models.Provider) error {
	for i := range f.providers {
		if f.providers[i].ID == provider.ID {
			f.providers[i] = *provider
			return nil
		}
	}
	f.providers = append(f.providers, *provider)
	return nil
}

// ---- in-memory appointment repository ----

type fakeAppointmentRepo struct {
	nextID       uint
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) add(appointment models.Appointment) *models.Appointment {
	f.nextID++
	appointment.ID = f.nextID
	if appointment.Status == "" {
		appointment.Status = models.StatusPending
	}
	f.appointments = append(f.appointments, appointment)
	return &f.appointments[len(f.appointments)-1]
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	f.nextID++
	appointment.ID = f.nextID
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			appointment := f.appointments[i]
			return &appointment, nil
		}
	}
	return nil, utils.NotFoundf("appointment not found with id: %d", id)
}

func (f *fakeAppointmentRepo) FindAll(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, len(f.appointments))
	copy(out, f.appointments)
	return out, nil
}

func (f *fakeAppointmentRepo) FindByProviderID(_ context.Context, providerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := range f.appointments {
		if f.appointments[i].ProviderID != nil && *f.appointments[i].ProviderID == providerID {
			out = append(out, f.appointments[i])
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByProviderOwnerName(_ context.Context, ownerName string) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := range f.appointments {
		p := f.appointments[i].Provider
		if p != nil && p.OwnerName == ownerName {
			out = append(out, f.appointments[i])
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByUserID(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := range f.appointments {
		if f.appointments[i].UserID != nil && *f.appointments[i].UserID == userID {
			out = append(out, f.appointments[i])
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByVehicle(_ context.Context, vehicleName, vehicleNumber string) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := range f.appointments {
		if f.appointments[i].VehicleName == vehicleName && f.appointments[i].VehicleNumber == vehicleNumber {
			out = append(out, f.appointments[i])
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Save(_ context.Context, appointment *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == appointment.ID {
			f.appointments[i] = *appointment
			return nil
		}
	}
	f.appointments = append(f.appointments, *appointment)
	return nil
}

// ---- in-memory billing repository ----

// fakeBillingRepo enforces the partial unique index on appointment_id the same
// way the database does: a second row linking the same appointment fails with
// gorm.ErrDuplicatedKey, NULL links are exempt.
type fakeBillingRepo struct {
	nextID   uint
	billings []models.Billing
}

func (f *fakeBillingRepo) linkTaken(appointmentID uint, excludeBillingID uint) bool {
	for i := range f.billings {
		b := &f.billings[i]
		if b.ID != excludeBillingID && b.AppointmentID != nil && *b.AppointmentID == appointmentID {
			return true
		}
	}
	return false
}

func (f *fakeBillingRepo) Create(_ context.Context, billing *models.Billing) error {
	if billing.AppointmentID != nil && f.linkTaken(*billing.AppointmentID, 0) {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	billing.ID = f.nextID
	if billing.PaymentStatus == "" {
		billing.PaymentStatus = models.PaymentPending
	}
	f.billings = append(f.billings, *billing)
	return nil
}

func (f *fakeBillingRepo) FindByID(_ context.Context, id uint) (*models.Billing, error) {
	for i := range f.billings {
		if f.billings[i].ID == id {
			billing := f.billings[i]
			return &billing, nil
		}
	}
	return nil, utils.NotFoundf("billing record not found with id: %d", id)
}

func (f *fakeBillingRepo) FindByUserID(_ context.Context, userID uint) ([]models.Billing, error) {
	var out []models.Billing
	for i := range f.billings {
		if f.billings[i].UserID != nil && *f.billings[i].UserID == userID {
			out = append(out, f.billings[i])
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) FindByProviderName(_ context.Context, providerName string) ([]models.Billing, error) {
	var out []models.Billing
	for i := range f.billings {
		if f.billings[i].ProviderName == providerName {
			out = append(out, f.billings[i])
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) FindByAppointmentID(_ context.Context, appointmentID uint) ([]models.Billing, error) {
	var out []models.Billing
	for i := range f.billings {
		if f.billings[i].AppointmentID != nil && *f.billings[i].AppointmentID == appointmentID {
			out = append(out, f.billings[i])
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) FindByPaymentStatus(_ context.Context, status models.PaymentStatus) ([]models.Billing, error) {
	var out []models.Billing
	for i := range f.billings {
		if f.billings[i].PaymentStatus == status {
			out = append(out, f.billings[i])
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) FindUnlinked(_ context.Context) ([]models.Billing, error) {
	var out []models.Billing
	for i := range f.billings {
		if f.billings[i].AppointmentID == nil {
			out = append(out, f.billings[i])
		}
	}
	return out, nil
}

func (f *fakeBillingRepo) CountLinked(_ context.Context) (int64, error) {
	var count int64
	for i := range f.billings {
		if f.billings[i].AppointmentID != nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeBillingRepo) Save(_ context.Context, billing *models.Billing) error {
	if billing.AppointmentID != nil && f.linkTaken(*billing.AppointmentID, billing.ID) {
		return gorm.ErrDuplicatedKey
	}
	for i := range f.billings {
		if f.billings[i].ID == billing.ID {
			f.billings[i] = *billing
			return nil
		}
	}
	f.billings = append(f.billings, *billing)
	return nil
}

// ---- in-memory service details repository ----

type fakeServiceDetailsRepo struct {
	nextID  uint
	details []models.ServiceDetails
}

func (f *fakeServiceDetailsRepo) Create(_ context.Context, details *models.ServiceDetails) error {
	f.nextID++
	details.ID = f.nextID
	f.details = append(f.details, *details)
	return nil
}

func (f *fakeServiceDetailsRepo) FindByID(_ context.Context, id uint) (*models.ServiceDetails, error) {
	for i := range f.details {
		if f.details[i].ID == id {
			details := f.details[i]
			return &details, nil
		}
	}
	return nil, utils.NotFoundf("service record not found with id: %d", id)
}

func (f *fakeServiceDetailsRepo) FindByUsername(_ context.Context, username string) ([]models.ServiceDetails, error) {
	var out []models.ServiceDetails
	for i := range f.details {
		if f.details[i].Username == username {
			out = append(out, f.details[i])
		}
	}
	return out, nil
}

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func uintPtr(v uint) *uint { return &v }
