package userRoutes

import (
	"crm/blacklist"
	userControllers "crm/controllers/user"
	"crm/middleware"
	userValidators "crm/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, store blacklist.Store) {
	userGroup := app.Group("/users", middleware.JWT(store))

	userGroup.Get("/", userControllers.UserList)
	userGroup.Get("/:id", userControllers.UserDetails)
	userGroup.Put("/:id", userValidators.Update(), userControllers.UpdateUser)
	userGroup.Delete("/:id", userControllers.DeleteUser)
}
