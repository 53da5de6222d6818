package courseRoutes

import (
	adminControllers "disha/controllers/admin"
	"disha/middleware"
	adminValidators "disha/validators/admin"
	validators "disha/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/create", middleware.CheckPermissionMiddleware("manage-courses"), adminValidators.CreateCourse(), adminControllers.AdminCreateCourse)
	adminGroup.Get("/list", adminControllers.AdminListCourses)
	adminGroup.Put("/:courseId", middleware.CheckPermissionMiddleware("manage-courses"), validators.CourseID(), adminValidators.UpdateCourse(), adminControllers.AdminUpdateCourse)
	adminGroup.Delete("/:courseId", middleware.CheckPermissionMiddleware("manage-courses"), validators.CourseID(), adminControllers.AdminDeleteCourse)
	adminGroup.Post("/:courseId/publish", middleware.CheckPermissionMiddleware("manage-courses"), validators.CourseID(), adminControllers.AdminPublishCourse)
	adminGroup.Get("/:courseId/enrollments", validators.CourseID(), adminControllers.AdminGetCourseEnrollments)

	// Topic management
	adminGroup.Post("/:courseId/topic", validators.CourseID(), adminValidators.CreateTopic(), adminControllers.AdminCreateTopic)
	adminGroup.Post("/:courseId/topics/reorder", validators.CourseID(), adminValidators.ReorderTopics(), adminControllers.AdminReorderTopics)
	adminGroup.Post("/:courseId/generate-outline", validators.CourseID(), adminControllers.AdminGenerateOutline)

	topicGroup := app.Group("/admin/topic", middleware.JWTMiddleware, middleware.AdminOnly)
	topicGroup.Put("/:topicId", validators.TopicID(), adminValidators.UpdateTopic(), adminControllers.AdminUpdateTopic)
	topicGroup.Delete("/:topicId", validators.TopicID(), adminControllers.AdminDeleteTopic)
	topicGroup.Post("/:topicId/generate-content", validators.TopicID(), adminControllers.AdminGenerateTopicContent)
	topicGroup.Post("/:topicId/generate-quiz", validators.TopicID(), adminControllers.AdminGenerateQuiz)
	topicGroup.Post("/:topicId/render-video", validators.TopicID(), adminControllers.AdminRequestTopicVideo)

	// Quiz question management
	topicGroup.Post("/:topicId/quiz", validators.TopicID(), adminValidators.CreateQuizQuestion(), adminControllers.AdminCreateQuizQuestion)

	quizGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.AdminOnly)
	quizGroup.Put("/:questionId", validators.QuestionID(), adminValidators.UpdateQuizQuestion(), adminControllers.AdminUpdateQuizQuestion)
	quizGroup.Delete("/:questionId", validators.QuestionID(), adminControllers.AdminDeleteQuizQuestion)
}
