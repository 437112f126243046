package routes

import (
	"plant-stock/config"
	"plant-stock/controllers"
	"plant-stock/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportController := controllers.NewReportController(db)

	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware, middleware.RequireRight("getReports"))
	api.Get("/monthly/:productId", reportController.GetMonthlyReport)
	api.Post("/monthly/:productId/generate", reportController.GenerateMonthlyReport)
	api.Get("/daily", reportController.GetDailyReport)
	api.Get("/daily/export", reportController.ExportDailyReport)
}
