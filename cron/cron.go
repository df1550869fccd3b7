package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kunalsharma05/garagehub/db"
	"github.com/kunalsharma05/garagehub/logger"
	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Every morning at 08:00, remind customers booked for the next day
	_, err := c.AddFunc("0 8 * * *", sendAppointmentReminders)
	if err != nil {
		logger.Log.Fatal("failed to add reminder cron job", zap.Error(err))
	}
	c.Start()
	logger.Log.Info("cron scheduler started for appointment reminders")
}

// sendAppointmentReminders emails every customer whose appointment is tomorrow
func sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	var appointments []models.Appointment
	err := db.DB.Preload("User").Preload("Provider").
		Where("appointment_date = ? AND status IN ?", tomorrow,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&appointments).Error
	if err != nil {
		logger.Log.Error("failed to fetch appointments for reminders", zap.Error(err))
		return
	}

	logger.Log.Info("appointment reminders due", zap.Int("count", len(appointments)))

	for i := range appointments {
		appointment := &appointments[i]
		if appointment.User == nil || appointment.User.Email == "" {
			continue
		}
		if err := sendReminderEmail(appointment); err != nil {
			logger.Log.Error("failed to send reminder",
				zap.Uint("appointment_id", appointment.ID), zap.Error(err))
			continue
		}
		logger.Log.Info("sent appointment reminder",
			zap.Uint("appointment_id", appointment.ID),
			zap.String("email", appointment.User.Email))
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	garage := "your service center"
	if appointment.Provider != nil {
		garage = appointment.Provider.DisplayName()
	}

	subject := fmt.Sprintf("Reminder: %s appointment tomorrow", appointment.ServiceType)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your vehicle service appointment tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Vehicle:</strong> %s (%s)</li>
			<li><strong>Garage:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>GarageHub Team</p>
	`, appointment.User.Name, appointment.ServiceType, appointment.VehicleName,
		appointment.VehicleNumber, garage, appointment.DateString(), appointment.Time)

	return utils.SendEmail(appointment.User.Email, subject, body)
}
