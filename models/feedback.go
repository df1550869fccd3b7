package models

import (
	"gorm.io/gorm"
)

// Feedback is append-only; there are no update or delete endpoints.
type Feedback struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Feedback string `json:"feedback" gorm:"size:1000"`
}

func (Feedback) TableName() string {
	return "feedback"
}
