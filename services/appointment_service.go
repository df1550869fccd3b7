package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/utils"
)

// AppointmentService handles booking and appointment queries.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	providers    repository.ProviderRepository
	log          *zap.Logger
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	users repository.UserRepository,
	providers repository.ProviderRepository,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		users:        users,
		providers:    providers,
		log:          log,
	}
}

// Book resolves the booking user by username, attaches it to the appointment
// draft and persists it. The draft's requester and vehicle fields are stored as
// given; they are a snapshot, not derived from the user profile. Nothing is
// written when the user cannot be resolved.
func (s *AppointmentService) Book(ctx context.Context, appointment *models.Appointment, username string) (*models.Appointment, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if appointment.Status != "" {
		if _, err := models.ParseAppointmentStatus(string(appointment.Status)); err != nil {
			return nil, err
		}
	} else {
		appointment.Status = models.StatusPending
	}

	if appointment.ProviderID != nil {
		if _, err := s.providers.FindByID(ctx, *appointment.ProviderID); err != nil {
			return nil, err
		}
	}

	appointment.UserID = &user.ID
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, utils.Internal("failed to create appointment", err)
	}

	s.log.Info("appointment booked",
		zap.Uint("appointment_id", appointment.ID),
		zap.String("username", username),
		zap.String("service_type", appointment.ServiceType))
	return appointment, nil
}

// GetAll returns every appointment. An empty result is not an error.
func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.appointments.FindAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to fetch appointments", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

// GetByProviderID returns the appointments assigned to a provider.
func (s *AppointmentService) GetByProviderID(ctx context.Context, providerID uint) ([]models.Appointment, error) {
	appointments, err := s.appointments.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, utils.Internal("failed to fetch appointments", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

// GetByOwnerName returns appointments for every provider whose owner has the
// given name. Deprecated compatibility path; owner names may collide.
func (s *AppointmentService) GetByOwnerName(ctx context.Context, ownerName string) ([]models.Appointment, error) {
	appointments, err := s.appointments.FindByProviderOwnerName(ctx, ownerName)
	if err != nil {
		return nil, utils.Internal("failed to fetch appointments", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

// UpdateStatus moves an appointment through the status transition table.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uint, newStatus string) (*models.Appointment, error) {
	status, err := models.ParseAppointmentStatus(newStatus)
	if err != nil {
		return nil, err
	}

	appointment, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, utils.InvalidInputf("invalid status transition from %q to %q", appointment.Status, status)
	}

	appointment.Status = status
	if err := s.appointments.Save(ctx, appointment); err != nil {
		return nil, utils.Internal("failed to update appointment status", err)
	}

	s.log.Info("appointment status updated",
		zap.Uint("appointment_id", appointment.ID),
		zap.String("status", string(status)))
	return appointment, nil
}
