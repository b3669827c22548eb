package queryRoutes

import (
	"crm/blacklist"
	queryControllers "crm/controllers/query"
	"crm/middleware"
	queryValidators "crm/validators/query"

	"github.com/gofiber/fiber/v2"
)

func SetupQueryRoutes(app *fiber.App, store blacklist.Store) {
	queryGroup := app.Group("/queries", middleware.JWT(store))

	// User endpoints
	queryGroup.Post("/create", queryValidators.Create(), queryControllers.Create)
	queryGroup.Get("/user", queryControllers.UserQueryList)
	queryGroup.Get("/user/:status", queryControllers.UserQueryList)

	// Admin endpoints
	adminGroup := queryGroup.Group("/admin", middleware.RequireRole(middleware.RoleAdmin))
	adminGroup.Get("/", queryControllers.AdminQueryList)
	adminGroup.Get("/:status", queryControllers.AdminQueryList)
	adminGroup.Put("/update-status", queryValidators.UpdateStatus(), queryControllers.UpdateStatus)
}
