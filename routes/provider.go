package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/controllers"
)

// SetupProviderRoutes configures the garage provider routes
func SetupProviderRoutes(app *fiber.App, ctl *controllers.ProviderController) {
	provider := app.Group("/provider")
	provider.Get("/providerList", ctl.List)
	provider.Post("/register", ctl.Register)
	provider.Post("/login", ctl.Login)
	provider.Put("/forgot-password", ctl.ForgotPassword)
	provider.Put("/update/:id", ctl.UpdateProfile)
	provider.Get("/images/:id", ctl.GetImage)
	provider.Get("/:id", ctl.GetByID)
}
