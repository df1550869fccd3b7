package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/utils"
)

type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "Pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCanceled   AppointmentStatus = "canceled"
)

// statusTransitions is the closed transition table for appointment statuses.
// Pending may jump straight to completed (walk-in services are recorded after
// the fact); completed and canceled are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusConfirmed, StatusInProgress, StatusCompleted, StatusCanceled},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCanceled},
	StatusInProgress: {StatusCompleted, StatusCanceled},
	StatusCompleted:  {},
	StatusCanceled:   {},
}

// ParseAppointmentStatus validates a status string against the closed vocabulary.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCanceled:
		return AppointmentStatus(s), nil
	}
	return "", utils.InvalidInputf("unknown appointment status %q", s)
}

// CanTransitionTo reports whether the transition table allows moving to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Appointment struct {
	gorm.Model
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	VehicleName   string            `json:"vehicleName"`
	VehicleNumber string            `json:"vehicleNumber"`
	ServiceType   string            `json:"serviceType"`
	Date          time.Time         `json:"date" gorm:"column:appointment_date;type:date"`
	Time          string            `json:"time" gorm:"column:appointment_time"`
	Status        AppointmentStatus `json:"status"`
	// Requester name/phone above are a point-in-time snapshot taken at booking;
	// later edits to the user profile do not rewrite them.
	UserID     *uint     `json:"user_id"`
	User       *User     `json:"-" gorm:"foreignKey:UserID"`
	ProviderID *uint     `json:"provider_id"`
	Provider   *Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// DateString is the canonical string form of the appointment date, used when
// copying it onto billing records and when matching during link repair.
func (a *Appointment) DateString() string {
	if a.Date.IsZero() {
		return ""
	}
	return a.Date.Format(utils.DateLayout)
}
