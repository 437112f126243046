package controllers

import (
	"plant-stock/middleware"
	"plant-stock/repositories"
	"plant-stock/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB   *gorm.DB
	repo *repositories.StockRepository
}

func NewStockController(DB *gorm.DB) *StockController {
	return &StockController{DB: DB, repo: repositories.NewStockRepository(DB)}
}

func (c *StockController) GetCurrentStock(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	view, err := c.repo.CurrentStock(uint(productID), middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Current stock found", "data": view})
}

func (c *StockController) GetStockHistory(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	productID := ctx.QueryInt("product_id", 0)

	stocks, count, err := c.repo.StockHistory(middleware.CurrentUser(ctx), uint(productID), page, limit)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock history found",
		"data": fiber.Map{
			"stocks":        stocks,
			"page":          page,
			"limit":         limit,
			"total_results": count,
		},
	})
}

func (c *StockController) GetStockAlerts(ctx *fiber.Ctx) error {
	alerts, err := c.repo.StockAlerts(middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock alerts found", "data": alerts})
}
