package authRoutes

import (
	authControllers "disha/controllers/auth"
	"disha/middleware"
	authValidators "disha/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login-history", middleware.JWTMiddleware, authValidators.LoginHistoryList(), authControllers.LoginHistoryList)

	// Email verification
	authGroup.Post("/send-otp", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Post("/verify-otp", authValidators.VerifyOTP(), authControllers.VerifyOTP)

	// Password recovery
	authGroup.Post("/forgot-password/send-otp", authValidators.SendOTP(), authControllers.ForgotPasswordSendOTP)
	authGroup.Post("/forgot-password/verify-otp", authValidators.VerifyOTP(), authControllers.ForgotPasswordVerifyOTP)
	authGroup.Post("/reset-password", middleware.JWTMiddleware, authValidators.ResetPassword(), authControllers.ResetPassword)
	authGroup.Post("/change-password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangeLoginPassword)
}
