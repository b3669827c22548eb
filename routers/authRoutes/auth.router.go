package authRoutes

import (
	"crm/blacklist"
	authControllers "crm/controllers/auth"
	authValidators "crm/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, store blacklist.Store) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/generate-login-otp", authValidators.GenerateLoginOtp(), authControllers.GenerateLoginOtp)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout(store))
}
