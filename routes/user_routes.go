package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Get("/profile", userController.GetProfile)
	api.Post("/", middleware.RequireRight("manageUsers"), userController.CreateUser)
	api.Get("/", middleware.RequireRight("getUsers"), userController.GetAllUsers)
	api.Get("/:id", middleware.RequireRight("getUsers"), userController.GetUserByID)
	api.Put("/:id", middleware.RequireRight("manageUsers"), userController.UpdateUser)
	api.Delete("/:id", middleware.RequireRight("manageUsers"), userController.DeleteUser)
}
