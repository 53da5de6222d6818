package assessmentRoutes

import (
	assessmentControllers "disha/controllers/assessment"
	recommendationControllers "disha/controllers/recommendation"
	"disha/middleware"
	assessmentValidators "disha/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

func SetupAssessmentRoutes(app *fiber.App) {
	assessmentGroup := app.Group("/assessment")

	assessmentGroup.Get("/questions", middleware.JWTMiddleware, assessmentControllers.GetAssessmentQuestions)
	assessmentGroup.Post("/submit", middleware.JWTMiddleware, assessmentValidators.SubmitAssessment(), assessmentControllers.SubmitAssessment)
	assessmentGroup.Get("/result", middleware.JWTMiddleware, assessmentControllers.GetLatestResult)

	// Career recommendations derived from the latest assessment
	recommendationGroup := app.Group("/recommendation")
	recommendationGroup.Post("/generate", middleware.JWTMiddleware, recommendationControllers.GenerateRecommendations)
	recommendationGroup.Get("/list", middleware.JWTMiddleware, recommendationControllers.GetRecommendations)
}
