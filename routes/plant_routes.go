package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPlantRoutes(app *fiber.App, db *gorm.DB) {
	plantController := controllers.NewPlantController(db)

	api := app.Group(config.MAIN_ROUTES+"/plants", middleware.AuthMiddleware)
	api.Post("/", middleware.RequireRight("managePlants"), plantController.CreatePlant)
	api.Get("/", middleware.RequireRight("getPlants"), plantController.GetAllPlants)
	api.Get("/:id", middleware.RequireRight("getPlants"), plantController.GetPlantByID)
	api.Put("/:id", middleware.RequireRight("managePlants"), plantController.UpdatePlant)
	api.Delete("/:id", middleware.RequireRight("managePlants"), plantController.DeletePlant)
}
