package adminRoutes

import (
	adminControllers "crm/controllers/admin"
	adminValidators "crm/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/register", adminValidators.Register(), adminControllers.Register)
	adminGroup.Post("/send-otp", adminValidators.SendOtp(), adminControllers.SendOtp)
	adminGroup.Post("/login", adminValidators.Login(), adminControllers.Login)
}
