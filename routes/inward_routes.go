package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInwardRoutes(app *fiber.App, db *gorm.DB) {
	inwardController := controllers.NewInwardController(db)

	api := app.Group(config.MAIN_ROUTES+"/inwards", middleware.AuthMiddleware)
	api.Post("/", middleware.RequireRight("createInward"), inwardController.CreateInward)
	api.Get("/", middleware.RequireRight("getStock"), inwardController.GetAllInwards)
	api.Get("/pending", middleware.RequireRight("approveInwards"), inwardController.GetPendingInwards)
	api.Get("/:id", middleware.RequireRight("getStock"), inwardController.GetInwardByID)
	api.Put("/:id/approve", middleware.RequireRight("approveInwards"), inwardController.ApproveInward)
}
