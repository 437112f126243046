package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Post("/", middleware.RequireRight("manageProducts"), productController.CreateProduct)
	api.Get("/", middleware.RequireRight("getProducts"), productController.GetAllProducts)
	api.Get("/:id", middleware.RequireRight("getProducts"), productController.GetProductByID)
	api.Put("/:id", middleware.RequireRight("manageProducts"), productController.UpdateProduct)
	api.Delete("/:id", middleware.RequireRight("manageProducts"), productController.DeleteProduct)
}
