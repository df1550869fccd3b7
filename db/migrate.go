package db

import (
	"fmt"
	"log"

	"github.com/kunalsharma05/garagehub/models"
)

func Migrate() {
	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.Appointment{},
		&models.ServiceDetails{},
		&models.Update{},
		&models.Billing{},
		&models.ServiceItem{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
