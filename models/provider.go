package models

import (
	"time"
)

// Provider is a garage / service-center account.
type Provider struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	GarageName        string    `json:"garagename"`
	OwnerName         string    `json:"ownername"`
	GarageAddress     string    `json:"garageaddress"`
	Password          string    `json:"password,omitempty"`
	Email             string    `json:"email"`
	PhoneNo           string    `json:"phoneno"`
	Specializations   string    `json:"specializations"`
	AvailableServices string    `json:"availableservices"`
	ImageName         string    `json:"image_name,omitempty"`
	ImageType         string    `json:"image_type,omitempty"`
	ImageData         []byte    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DisplayName is the name shown on billing records: garage name if set,
// otherwise owner name, otherwise a generic label.
func (p *Provider) DisplayName() string {
	if p == nil {
		return "Service Provider"
	}
	if p.GarageName != "" {
		return p.GarageName
	}
	if p.OwnerName != "" {
		return p.OwnerName
	}
	return "Service Provider"
}
