package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctl *controllers.AppointmentController) {
	appointment := app.Group("/appointment")
	appointment.Post("/book", ctl.Book)
	appointment.Get("/all", ctl.GetAll)
	appointment.Get("/providers", ctl.ListProviders)
	appointment.Get("/owner/:ownerName", ctl.GetByOwner)
	appointment.Get("/provider/:providerId", ctl.GetByProvider)
	appointment.Patch("/:id/status", ctl.UpdateStatus)
}
