package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/controllers"
)

// SetupBillingRoutes configures all billing related routes
func SetupBillingRoutes(app *fiber.App, ctl *controllers.BillingController) {
	billing := app.Group("/api/billing")
	billing.Get("/paid", ctl.GetPaid)
	billing.Get("/status/:paymentStatus", ctl.GetByStatus)
	billing.Get("/users/:userId", ctl.GetByUser)
	billing.Get("/provider/:providerName", ctl.GetByProvider)
	billing.Get("/appointment/:appointmentId", ctl.GetByAppointment)
	billing.Post("/create", ctl.Create)
	billing.Post("/create-from-appointment/:appointmentId", ctl.CreateFromAppointment)
	billing.Post("/fix-appointment-ids", ctl.RepairLinks)
	billing.Put("/:id/pay", ctl.Pay)
	billing.Put("/:id/status", ctl.UpdateStatus)
}
