package waitlistRoutes

import (
	waitlistControllers "disha/controllers/waitlist"
	"disha/middleware"
	courseValidators "disha/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupWaitlistRoutes(app *fiber.App) {
	waitlistGroup := app.Group("/waitlist")

	waitlistGroup.Post("/:courseId/join", middleware.JWTMiddleware, courseValidators.CourseID(), waitlistControllers.JoinWaitlist)
	waitlistGroup.Delete("/:courseId/leave", middleware.JWTMiddleware, courseValidators.CourseID(), waitlistControllers.LeaveWaitlist)
	waitlistGroup.Get("/list", middleware.JWTMiddleware, waitlistControllers.GetMyWaitlist)
}
