package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplierRoutes(app *fiber.App, db *gorm.DB) {
	supplierController := controllers.NewSupplierController(db)

	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	api.Post("/", middleware.RequireRight("manageSuppliers"), supplierController.CreateSupplier)
	api.Get("/", middleware.RequireRight("getSuppliers"), supplierController.GetAllSuppliers)
	api.Get("/:id", middleware.RequireRight("getSuppliers"), supplierController.GetSupplierByID)
	api.Put("/:id", middleware.RequireRight("manageSuppliers"), supplierController.UpdateSupplier)
	api.Delete("/:id", middleware.RequireRight("manageSuppliers"), supplierController.DeleteSupplier)
}
