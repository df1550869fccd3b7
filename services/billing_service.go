package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/utils"
)

// serviceAmounts is the fixed price table keyed on lower-cased service type.
var serviceAmounts = map[string]float64{
	"oil change":          1500.00,
	"tire rotation":       1200.00,
	"brake service":       3500.00,
	"engine diagnostic":   2500.00,
	"general maintenance": 1800.00,
}

const defaultServiceAmount = 2000.00

// CalculateServiceAmount returns the billing amount for a service type. Unknown
// or empty types fall back to the default amount.
func CalculateServiceAmount(serviceType string) float64 {
	if amount, ok := serviceAmounts[strings.ToLower(serviceType)]; ok {
		return amount
	}
	return defaultServiceAmount
}

// RepairSummary reports the outcome of a link-repair run.
type RepairSummary struct {
	Fixed         int `json:"fixed"`
	AlreadyLinked int `json:"already_linked"`
}

// BillingService derives billing records from appointments and manages payments.
type BillingService struct {
	billings     repository.BillingRepository
	appointments repository.AppointmentRepository
	log          *zap.Logger
}

func NewBillingService(
	billings repository.BillingRepository,
	appointments repository.AppointmentRepository,
	log *zap.Logger,
) *BillingService {
	return &BillingService{billings: billings, appointments: appointments, log: log}
}

// GetOrCreateByAppointment returns the billing records linked to an appointment.
// When none exist and the appointment is completed, exactly one record is
// synthesized from it. An unknown appointment id resolves to an empty list, not
// an error: callers polling a billing page before the appointment exists get an
// empty statement rather than a failure.
func (s *BillingService) GetOrCreateByAppointment(ctx context.Context, appointmentID uint) ([]models.Billing, error) {
	billings, err := s.billings.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, utils.Internal("failed to fetch billing records", err)
	}
	if len(billings) > 0 {
		return billings, nil
	}

	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) {
			return []models.Billing{}, nil
		}
		return nil, err
	}
	if appointment.Status != models.StatusCompleted {
		return []models.Billing{}, nil
	}

	billing := s.buildFromAppointment(appointment)
	if err := s.billings.Create(ctx, billing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent caller; the unique index on
			// appointment_id guarantees a single row either way.
			return s.billings.FindByAppointmentID(ctx, appointmentID)
		}
		return nil, utils.Internal("failed to create billing record", err)
	}

	s.log.Info("billing synthesized from appointment",
		zap.Uint("appointment_id", appointmentID),
		zap.Uint("billing_id", billing.ID),
		zap.Float64("amount", billing.TotalAmount))
	return []models.Billing{*billing}, nil
}

// CreateFromAppointment synthesizes a billing record for an appointment on
// explicit request, regardless of appointment status.
func (s *BillingService) CreateFromAppointment(ctx context.Context, appointmentID uint) (*models.Billing, error) {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	billing := s.buildFromAppointment(appointment)
	if err := s.billings.Create(ctx, billing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflictf("billing already exists for appointment %d", appointmentID)
		}
		return nil, utils.Internal("failed to create billing record", err)
	}
	return billing, nil
}

func (s *BillingService) buildFromAppointment(appointment *models.Appointment) *models.Billing {
	billing := &models.Billing{
		AppointmentID: &appointment.ID,
		UserID:        appointment.UserID,
		VehicleName:   appointment.VehicleName,
		VehicleNumber: appointment.VehicleNumber,
		Date:          appointment.DateString(),
		Time:          appointment.Time,
		TotalAmount:   CalculateServiceAmount(appointment.ServiceType),
		PaymentStatus: models.PaymentPending,
		ProviderName:  appointment.Provider.DisplayName(),
	}
	if appointment.Provider != nil {
		billing.ProviderID = &appointment.Provider.ID
	}
	return billing
}

// Create stores a manually entered billing record with its service items.
func (s *BillingService) Create(ctx context.Context, billing *models.Billing) (*models.Billing, error) {
	if billing.PaymentStatus != "" {
		if _, err := models.ParsePaymentStatus(string(billing.PaymentStatus)); err != nil {
			return nil, err
		}
	}
	if err := s.billings.Create(ctx, billing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflictf("billing already exists for appointment %d", *billing.AppointmentID)
		}
		return nil, utils.Internal("failed to create billing record", err)
	}
	return billing, nil
}

// RecordPayment sets the payment status and method. Whenever the status is
// "paid" the payment date is stamped with the current time; it is re-stamped on
// repeat "paid" updates and never cleared when the status moves away from
// "paid". That ratchet mirrors how the billing history has always behaved and
// is relied on by reporting.
func (s *BillingService) RecordPayment(ctx context.Context, id uint, status, method string) (*models.Billing, error) {
	return s.updatePayment(ctx, id, status, &method)
}

// UpdatePaymentStatus is the status-only variant; the payment method is left as is.
func (s *BillingService) UpdatePaymentStatus(ctx context.Context, id uint, status string) (*models.Billing, error) {
	return s.updatePayment(ctx, id, status, nil)
}

func (s *BillingService) updatePayment(ctx context.Context, id uint, status string, method *string) (*models.Billing, error) {
	paymentStatus, err := models.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	billing, err := s.billings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	billing.PaymentStatus = paymentStatus
	if method != nil {
		billing.PaymentMethod = *method
	}
	if paymentStatus == models.PaymentPaid {
		now := time.Now()
		billing.PaymentDate = &now
	}

	if err := s.billings.Save(ctx, billing); err != nil {
		return nil, utils.Internal("failed to update payment", err)
	}

	s.log.Info("payment updated",
		zap.Uint("billing_id", billing.ID),
		zap.String("payment_status", string(paymentStatus)))
	return billing, nil
}

// GetByUser returns the billing records for a customer.
func (s *BillingService) GetByUser(ctx context.Context, userID uint) ([]models.Billing, error) {
	billings, err := s.billings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.Internal("failed to fetch billing records", err)
	}
	if billings == nil {
		billings = []models.Billing{}
	}
	return billings, nil
}

// GetByProviderName returns the billing records carrying a provider-name snapshot.
func (s *BillingService) GetByProviderName(ctx context.Context, providerName string) ([]models.Billing, error) {
	billings, err := s.billings.FindByProviderName(ctx, providerName)
	if err != nil {
		return nil, utils.Internal("failed to fetch billing records", err)
	}
	if billings == nil {
		billings = []models.Billing{}
	}
	return billings, nil
}

// GetByPaymentStatus filters billing records by payment status.
func (s *BillingService) GetByPaymentStatus(ctx context.Context, status string) ([]models.Billing, error) {
	paymentStatus, err := models.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	billings, err := s.billings.FindByPaymentStatus(ctx, paymentStatus)
	if err != nil {
		return nil, utils.Internal("failed to fetch billing records", err)
	}
	if billings == nil {
		billings = []models.Billing{}
	}
	return billings, nil
}

// RepairMissingAppointmentLinks backfills appointment references on billing rows
// that lost or never had one. Candidates are matched by vehicle name and number;
// an exact date-string match wins, otherwise the first candidate is taken. Rows
// with an existing link are never touched, so a second run fixes nothing.
func (s *BillingService) RepairMissingAppointmentLinks(ctx context.Context) (*RepairSummary, error) {
	linked, err := s.billings.CountLinked(ctx)
	if err != nil {
		return nil, utils.Internal("failed to count billing records", err)
	}

	unlinked, err := s.billings.FindUnlinked(ctx)
	if err != nil {
		return nil, utils.Internal("failed to fetch unlinked billing records", err)
	}

	summary := &RepairSummary{AlreadyLinked: int(linked)}
	for i := range unlinked {
		billing := &unlinked[i]

		matches, err := s.appointments.FindByVehicle(ctx, billing.VehicleName, billing.VehicleNumber)
		if err != nil {
			return nil, utils.Internal("failed to search appointments for repair", err)
		}
		if len(matches) == 0 {
			continue
		}

		match := &matches[0]
		if billing.Date != "" {
			for j := range matches {
				if matches[j].DateString() == billing.Date {
					match = &matches[j]
					break
				}
			}
		}

		billing.AppointmentID = &match.ID
		if err := s.billings.Save(ctx, billing); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// The matched appointment is already billed elsewhere; leave
				// this row unlinked rather than double-book it.
				s.log.Warn("repair skipped, appointment already linked",
					zap.Uint("billing_id", billing.ID),
					zap.Uint("appointment_id", match.ID))
				billing.AppointmentID = nil
				continue
			}
			return nil, utils.Internal("failed to save repaired billing record", err)
		}
		summary.Fixed++
		s.log.Info("billing link repaired",
			zap.Uint("billing_id", billing.ID),
			zap.Uint("appointment_id", match.ID))
	}

	return summary, nil
}
