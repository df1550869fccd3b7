package models

import (
	"time"
)

type User struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	Username          string     `json:"username" gorm:"unique"`
	Password          string     `json:"password,omitempty"`
	Name              string     `json:"name"`
	Address           string     `json:"address"`
	VehicleType       string     `json:"vehicletype"`
	VehicleModel      string     `json:"vehiclemodel"`
	YearOfManufacture int        `json:"yearofmanufacture"`
	RegNo             string     `json:"regno"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	DateOfBirth       *time.Time `json:"dateofbirth,omitempty"`
	ImageName         string     `json:"image_name,omitempty"`
	ImageType         string     `json:"image_type,omitempty"`
	ImageData         []byte     `json:"-"`
	// Appointments are owned by the user and removed with it.
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
