package models

import (
	"gorm.io/gorm"
)

// ServiceDetails is the customer-facing progress record for one vehicle service.
// Rows may be persisted by providers, or synthesized on the fly from the user's
// appointments when none exist yet.
type ServiceDetails struct {
	gorm.Model
	Username            string `json:"username"`
	VehicleModel        string `json:"vehicleModel"`
	LicensePlate        string `json:"licensePlate"`
	ServiceType         string `json:"serviceType"`
	Description         string `json:"description"`
	Status              string `json:"status"`
	EstimatedCompletion string `json:"estimatedCompletion"`
	CostEstimate        string `json:"costEstimate"`
	Technician          string `json:"technician"`
	Priority            string `json:"priority"`
	Updates             []Update `json:"updates" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// Update is one step in a service timeline. Immutable once created.
type Update struct {
	gorm.Model
	ServiceID  uint   `json:"service_id"`
	Step       string `json:"step"`
	Note       string `json:"note"`
	Completed  bool   `json:"completed"`
	Timestamp  string `json:"timestamp"`
	Technician string `json:"technician"`
}

func (Update) TableName() string {
	return "service_updates"
}
