package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/controllers"
)

// SetupUserRoutes configures registration, login and profile routes
func SetupUserRoutes(app *fiber.App, ctl *controllers.UserController) {
	api := app.Group("/api")
	api.Post("/register", ctl.Register)
	api.Post("/login", ctl.Login)
	api.Put("/users/forgot-password", ctl.ForgotPassword)
	api.Get("/users/:username", ctl.GetByUsername)
	api.Put("/users/:username", ctl.UpdateProfile)
	api.Get("/users/:username/image", ctl.GetImage)
}
