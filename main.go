package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kunalsharma05/garagehub/cache"
	"github.com/kunalsharma05/garagehub/controllers"
	"github.com/kunalsharma05/garagehub/cron"
	"github.com/kunalsharma05/garagehub/db"
	"github.com/kunalsharma05/garagehub/logger"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/routes"
	"github.com/kunalsharma05/garagehub/services"
)

func main() {
	godotenv.Load()
	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Sync()

	db.Init()
	db.Migrate()

	providerCache := cache.NewProviderCache(os.Getenv("REDIS_ADDR"))

	users := repository.NewGormUserRepository(db.DB)
	providers := repository.NewGormProviderRepository(db.DB)
	appointments := repository.NewGormAppointmentRepository(db.DB)
	billings := repository.NewGormBillingRepository(db.DB)
	serviceDetails := repository.NewGormServiceDetailsRepository(db.DB)
	feedback := repository.NewGormFeedbackRepository(db.DB)

	accountService := services.NewAccountService(users, logger.Log)
	providerService := services.NewProviderService(providers, providerCache, logger.Log)
	appointmentService := services.NewAppointmentService(appointments, users, providers, logger.Log)
	billingService := services.NewBillingService(billings, appointments, logger.Log)
	timelineService := services.NewTimelineService(serviceDetails, appointments, users, logger.Log)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("GarageHub API is running")
	})

	routes.SetupUserRoutes(app, controllers.NewUserController(accountService))
	routes.SetupProviderRoutes(app, controllers.NewProviderController(providerService))
	routes.SetupAppointmentRoutes(app, controllers.NewAppointmentController(appointmentService, providerService))
	routes.SetupBillingRoutes(app, controllers.NewBillingController(billingService))
	routes.SetupServiceDetailsRoutes(app, controllers.NewServiceDetailsController(timelineService))
	routes.SetupFeedbackRoutes(app, controllers.NewFeedbackController(feedback))

	if os.Getenv("ENABLE_REMINDERS") == "true" {
		cron.StartCronJobs()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logger.Log.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
