package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/controllers"
)

// SetupServiceDetailsRoutes configures the service timeline routes
func SetupServiceDetailsRoutes(app *fiber.App, ctl *controllers.ServiceDetailsController) {
	services := app.Group("/api/services")
	services.Post("/create", ctl.Create)
	services.Get("/:username", ctl.GetByUsername)
}
