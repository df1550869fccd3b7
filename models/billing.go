package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/utils"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// ParsePaymentStatus validates a payment status against the closed vocabulary.
// Any transition between the three states is allowed; PaymentDate handling is
// the billing service's concern.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return PaymentStatus(s), nil
	}
	return "", utils.InvalidInputf("unknown payment status %q", s)
}

type Billing struct {
	gorm.Model
	ReceiptNumber string `json:"receipt_number" gorm:"uniqueIndex"`
	UserID        *uint  `json:"user_id"`
	VehicleName   string `json:"vehicleName"`
	VehicleNumber string `json:"vehicleNumber"`
	// At most one billing per appointment; NULL rows (legacy imports) are exempt
	// from the unique index and handled by the link-repair operation.
	AppointmentID *uint         `json:"appointment_id" gorm:"uniqueIndex"`
	Date          string        `json:"date" gorm:"column:appointment_date"`
	Time          string        `json:"time" gorm:"column:appointment_time"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"default:pending"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty"`
	ProviderID    *uint         `json:"provider_id"`
	// ProviderName is a snapshot taken when the billing was synthesized, not a join.
	ProviderName string        `json:"providerName"`
	Services     []ServiceItem `json:"services" gorm:"foreignKey:BillingID;constraint:OnDelete:CASCADE"`
}

func (b *Billing) BeforeCreate(tx *gorm.DB) error {
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	if b.ReceiptNumber == "" {
		b.ReceiptNumber = uuid.NewString()
	}
	return nil
}

type ServiceItem struct {
	gorm.Model
	BillingID    uint    `json:"billing_id"`
	ServiceName  string  `json:"serviceName"`
	ProviderName string  `json:"providerName"`
	Price        float64 `json:"price"`
}
