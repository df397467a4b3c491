package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/authsrv/internal/config"
	"github.com/example/authsrv/internal/handlers"
	"github.com/example/authsrv/internal/middleware"
	"github.com/example/authsrv/internal/services"
	"github.com/example/authsrv/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, users store.UserStore, mailer services.MailSender, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(users, mailer, cfg)
	verificationHandler := handlers.NewVerificationHandler(users, mailer)
	resetHandler := handlers.NewPasswordResetHandler(users, mailer)

	protected := middleware.AuthMiddleware(cfg)

	auth := app.Group("/api/auth")

	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", protected, authHandler.Logout)

	// Verification routes
	auth.Post("/send-verify-otp", protected, verificationHandler.SendVerifyOtp)
	auth.Post("/verify-account", protected, verificationHandler.VerifyAccount)
	auth.Get("/is-auth", protected, authHandler.IsAuthenticated)

	// Reset routes
	auth.Post("/send-reset-otp", resetHandler.SendResetOtp)
	auth.Post("/reset-password", resetHandler.ResetPassword)
}
