package main

import (
	"log"

	"disha/config"
	"disha/database"
	adminRoutes "disha/routers/adminRoutes"
	assessmentRoutes "disha/routers/assessmentRoutes"
	authRoutes "disha/routers/authRoutes"
	courseRoutes "disha/routers/courseRoutes"
	jobRoutes "disha/routers/jobRoutes"
	userRoutes "disha/routers/userRoutes"
	waitlistRoutes "disha/routers/waitlistRoutes"
	"disha/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Background jobs: exam expiry, waitlist sweeps, video render polling
	utils.InitializeExamScheduler()
	utils.InitializeWaitlistScheduler()
	utils.InitializeVideoScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	waitlistRoutes.SetupWaitlistRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
