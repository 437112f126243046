package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	stockController := controllers.NewStockController(db)

	api := app.Group(config.MAIN_ROUTES+"/stocks", middleware.AuthMiddleware, middleware.RequireRight("getStock"))
	api.Get("/current/:productId", stockController.GetCurrentStock)
	api.Get("/history", stockController.GetStockHistory)
	api.Get("/alerts", stockController.GetStockAlerts)
}
