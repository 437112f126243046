package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/categories", middleware.AuthMiddleware)
	api.Post("/", middleware.RequireRight("manageCategories"), categoryController.CreateCategory)
	api.Get("/", middleware.RequireRight("getCategories"), categoryController.GetAllCategories)
	api.Get("/:id", middleware.RequireRight("getCategories"), categoryController.GetCategoryByID)
	api.Put("/:id", middleware.RequireRight("manageCategories"), categoryController.UpdateCategory)
	api.Delete("/:id", middleware.RequireRight("manageCategories"), categoryController.DeleteCategory)
}
