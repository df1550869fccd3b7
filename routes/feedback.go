package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/controllers"
)

// SetupFeedbackRoutes configures the feedback routes
func SetupFeedbackRoutes(app *fiber.App, ctl *controllers.FeedbackController) {
	feedback := app.Group("/api/feedback")
	feedback.Post("/", ctl.Create)
	feedback.Get("/all", ctl.GetAll)
}
