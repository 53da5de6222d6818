package adminRoutes

import (
	adminControllers "disha/controllers/admin"
	"disha/middleware"
	adminValidators "disha/validators/admin"
	jobValidators "disha/validators/jobs"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin console routes outside course management
func SetupAdminRoutes(app *fiber.App) {
	// User management
	userGroup := app.Group("/admin/user", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("manage-users"))
	userGroup.Get("/list", adminValidators.UserList(), adminControllers.AdminListUsers)
	userGroup.Post("/:userId/block", adminValidators.UserID(), adminControllers.AdminBlockUser)
	userGroup.Post("/:userId/unblock", adminValidators.UserID(), adminControllers.AdminUnblockUser)
	userGroup.Delete("/:userId", adminValidators.UserID(), adminControllers.AdminDeleteUser)

	// Aptitude question bank
	aptitudeGroup := app.Group("/admin/aptitude", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("manage-assessments"))
	aptitudeGroup.Get("/list", adminControllers.AdminListAptitudeQuestions)
	aptitudeGroup.Post("/create", adminValidators.CreateAptitudeQuestion(), adminControllers.AdminCreateAptitudeQuestion)
	aptitudeGroup.Put("/:questionId", adminValidators.QuestionIDParam(), adminValidators.UpdateAptitudeQuestion(), adminControllers.AdminUpdateAptitudeQuestion)
	aptitudeGroup.Delete("/:questionId", adminValidators.QuestionIDParam(), adminControllers.AdminDeleteAptitudeQuestion)

	// Partner companies
	companyGroup := app.Group("/admin/company", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("manage-companies"))
	companyGroup.Get("/list", adminControllers.AdminListCompanies)
	companyGroup.Post("/create", adminValidators.CreateCompany(), adminControllers.AdminCreateCompany)
	companyGroup.Put("/:companyId", adminValidators.CompanyID(), adminValidators.UpdateCompany(), adminControllers.AdminUpdateCompany)
	companyGroup.Delete("/:companyId", adminValidators.CompanyID(), adminControllers.AdminDeleteCompany)

	// Job postings and application review
	jobGroup := app.Group("/admin/job", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("manage-jobs"))
	jobGroup.Post("/create", adminValidators.CreateJob(), adminControllers.AdminCreateJob)
	jobGroup.Put("/:jobId", jobValidators.JobID(), adminValidators.UpdateJob(), adminControllers.AdminUpdateJob)
	jobGroup.Delete("/:jobId", jobValidators.JobID(), adminControllers.AdminDeleteJob)
	jobGroup.Get("/:jobId/applications", jobValidators.JobID(), adminControllers.AdminGetJobApplications)

	applicationGroup := app.Group("/admin/application", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("review-applications"))
	applicationGroup.Post("/:applicationId/review", adminValidators.ApplicationID(), adminValidators.ReviewApplication(), adminControllers.AdminReviewApplication)

	// Certificates
	certificateGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("manage-certificates"))
	certificateGroup.Get("/list", adminControllers.AdminListCertificates)
	certificateGroup.Post("/:certificateId/revoke", adminValidators.CertificateID(), adminControllers.AdminRevokeCertificate)

	// Dashboard
	dashboardGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly, middleware.CheckPermissionMiddleware("view-dashboard"))
	dashboardGroup.Get("/stats", adminControllers.AdminDashboard)
}
