package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/utils"
)

// TimelineService produces the customer-facing service-progress view. Persisted
// records win; otherwise timelines are derived from the user's appointments.
type TimelineService struct {
	details      repository.ServiceDetailsRepository
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	log          *zap.Logger
}

func NewTimelineService(
	details repository.ServiceDetailsRepository,
	appointments repository.AppointmentRepository,
	users repository.UserRepository,
	log *zap.Logger,
) *TimelineService {
	return &TimelineService{details: details, appointments: appointments, users: users, log: log}
}

// GetServiceTimeline returns the persisted service records for a username, or
// derives one per appointment when none are stored. Derived records are not
// persisted; Save does that on explicit request.
func (s *TimelineService) GetServiceTimeline(ctx context.Context, username string) ([]models.ServiceDetails, error) {
	existing, err := s.details.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.Internal("failed to fetch service records", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) {
			return []models.ServiceDetails{}, nil
		}
		return nil, err
	}

	appointments, err := s.appointments.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.Internal("failed to fetch appointments", err)
	}

	derived := make([]models.ServiceDetails, 0, len(appointments))
	for i := range appointments {
		derived = append(derived, deriveServiceDetails(&appointments[i], username))
	}
	return derived, nil
}

// Save persists a service record, typically one a provider filled in by hand.
func (s *TimelineService) Save(ctx context.Context, details *models.ServiceDetails) (*models.ServiceDetails, error) {
	if details.Username == "" {
		return nil, utils.InvalidInputf("username is required")
	}
	if err := s.details.Create(ctx, details); err != nil {
		return nil, utils.Internal("failed to save service record", err)
	}
	s.log.Info("service record saved",
		zap.Uint("service_id", details.ID),
		zap.String("username", details.Username))
	return details, nil
}

// GetByID fetches one persisted service record with its updates.
func (s *TimelineService) GetByID(ctx context.Context, id uint) (*models.ServiceDetails, error) {
	return s.details.FindByID(ctx, id)
}

func deriveServiceDetails(appointment *models.Appointment, username string) models.ServiceDetails {
	technician := "Technician Not Assigned"
	if appointment.Provider != nil {
		technician = "Technician " + appointment.Provider.OwnerName
	}

	status := mapAppointmentStatus(appointment.Status)
	return models.ServiceDetails{
		Username:     username,
		VehicleModel: appointment.VehicleName,
		LicensePlate: appointment.VehicleNumber,
		ServiceType:  appointment.ServiceType,
		Description:  appointment.ServiceType + " service for " + appointment.VehicleName,
		Status:       status,
		Priority:     servicePriority(appointment.ServiceType),
		Technician:   technician,
		Updates:      timelineSteps(status),
	}
}

func mapAppointmentStatus(status models.AppointmentStatus) string {
	switch strings.ToLower(string(status)) {
	case "completed":
		return "completed"
	case "in-progress", "confirmed":
		return "in-progress"
	default:
		return "scheduled"
	}
}

func servicePriority(serviceType string) string {
	switch strings.ToLower(serviceType) {
	case "emergency", "brake service":
		return "high"
	case "oil change", "tire rotation":
		return "low"
	default:
		return "medium"
	}
}

// timelineSteps builds the fixed step template: check-in and inspection always,
// then an in-flight step or the completion sequence depending on status.
func timelineSteps(status string) []models.Update {
	steps := []models.Update{
		timelineStep("Vehicle Check-in", "Vehicle arrived at service center", true, "09:00 AM"),
		timelineStep("Initial Inspection", "Basic inspection completed", true, "09:30 AM"),
	}

	switch status {
	case "in-progress":
		steps = append(steps,
			timelineStep("Service In Progress", "Currently working on the vehicle", false, "10:00 AM"))
	case "completed":
		steps = append(steps,
			timelineStep("Service Completed", "All services completed successfully", true, "11:00 AM"),
			timelineStep("Quality Check", "Final quality inspection passed", true, "11:30 AM"),
			timelineStep("Ready for Pickup", "Vehicle ready for customer pickup", true, "12:00 PM"))
	}
	return steps
}

func timelineStep(step, note string, completed bool, timestamp string) models.Update {
	return models.Update{
		Step:       step,
		Note:       note,
		Completed:  completed,
		Timestamp:  timestamp,
		Technician: "Auto Technician",
	}
}
