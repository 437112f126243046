package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOutwardRoutes(app *fiber.App, db *gorm.DB) {
	outwardController := controllers.NewOutwardController(db)

	api := app.Group(config.MAIN_ROUTES+"/outwards", middleware.AuthMiddleware)
	api.Post("/", middleware.RequireRight("createOutward"), outwardController.CreateOutward)
	api.Get("/", middleware.RequireRight("getStock"), outwardController.GetAllOutwards)
	api.Get("/:id", middleware.RequireRight("getStock"), outwardController.GetOutwardByID)
}
