package courseRoutes

import (
	controllers "disha/controllers/course"
	"disha/middleware"
	validators "disha/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment and progress
	courseGroup.Post("/:courseId/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Get("/:courseId/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// Topic content
	courseGroup.Get("/:courseId/topic/:topicId", middleware.JWTMiddleware, validators.CourseID(), validators.TopicID(), controllers.GetTopicContent)
	courseGroup.Post("/:courseId/topic/:topicId/viewed", middleware.JWTMiddleware, validators.CourseID(), validators.TopicID(), controllers.MarkTopicViewed)

	// Topic quiz
	courseGroup.Post("/:courseId/topic/:topicId/quiz/submit", middleware.JWTMiddleware, validators.CourseID(), validators.TopicID(), validators.QuizSubmit(), controllers.SubmitQuiz)
	courseGroup.Get("/:courseId/topic/:topicId/quiz/attempts", middleware.JWTMiddleware, validators.CourseID(), validators.TopicID(), controllers.GetQuizAttempts)

	// Final exam
	courseGroup.Post("/:courseId/exam/schedule", middleware.JWTMiddleware, validators.CourseID(), validators.ExamSchedule(), controllers.ScheduleExam)

	examGroup := app.Group("/exam")
	examGroup.Get("/list", middleware.JWTMiddleware, controllers.GetMyExams)
	examGroup.Post("/:examId/start", middleware.JWTMiddleware, validators.ExamID(), controllers.StartExam)
	examGroup.Post("/:examId/submit", middleware.JWTMiddleware, validators.ExamID(), validators.ExamSubmit(), controllers.SubmitExam)
	examGroup.Get("/:examId/result", middleware.JWTMiddleware, validators.ExamID(), controllers.GetExamResult)

	// Enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Public certificate verification for employers
	app.Get("/certificate/verify/:number", controllers.VerifyCertificate)
}
