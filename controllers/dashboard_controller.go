package controllers

import (
	"time"

	"plant-stock/middleware"
	"plant-stock/models"
	"plant-stock/repositories"
	"plant-stock/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard merangkum aktivitas plant: jumlah produk, pending
// approval, pergerakan hari ini dan alert stok minimum.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)

	today := models.TruncateDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var productCount int64
	if err := c.DB.Model(&models.Product{}).Where("plant_id = ?", user.PlantID).Count(&productCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var pendingCount int64
	if err := c.DB.Model(&models.Inward{}).
		Where("plant_id = ? AND status = ?", user.PlantID, models.InwardPending).
		Count(&pendingCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var todayInward struct {
		Total int64
		Qty   int64
	}
	if err := c.DB.Model(&models.Inward{}).
		Select("COUNT(*) AS total, COALESCE(SUM(final_qty), 0) AS qty").
		Where("plant_id = ? AND status = ? AND date >= ? AND date < ?",
			user.PlantID, models.InwardApproved, today, tomorrow).
		Scan(&todayInward).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var todayOutward struct {
		Total int64
		Qty   int64
	}
	if err := c.DB.Model(&models.Outward{}).
		Select("COUNT(*) AS total, COALESCE(SUM(quantity), 0) AS qty").
		Where("plant_id = ? AND date >= ? AND date < ?", user.PlantID, today, tomorrow).
		Scan(&todayOutward).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	alerts, err := repositories.NewStockRepository(c.DB).StockAlerts(user)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard found",
		"data": fiber.Map{
			"total_products":   productCount,
			"pending_inwards":  pendingCount,
			"today_inward":     fiber.Map{"entries": todayInward.Total, "quantity": todayInward.Qty},
			"today_outward":    fiber.Map{"entries": todayOutward.Total, "quantity": todayOutward.Qty},
			"low_stock_alerts": alerts,
		},
	})
}
