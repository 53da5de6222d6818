package jobRoutes

import (
	jobControllers "disha/controllers/jobs"
	"disha/middleware"
	jobValidators "disha/validators/jobs"

	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job")

	jobGroup.Get("/list", middleware.JWTMiddleware, jobValidators.JobList(), jobControllers.GetOpenJobs)
	jobGroup.Get("/:jobId", middleware.JWTMiddleware, jobValidators.JobID(), jobControllers.GetJobDetails)
	jobGroup.Post("/:jobId/apply", middleware.JWTMiddleware, jobValidators.JobID(), jobValidators.Application(), jobControllers.ApplyToJob)

	userGroup := app.Group("/user")
	userGroup.Get("/applications", middleware.JWTMiddleware, jobControllers.GetMyApplications)
}
