package controllers

import (
	"plant-stock/middleware"
	"plant-stock/repositories"
	"plant-stock/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OutwardController struct {
	DB   *gorm.DB
	repo *repositories.OutwardRepository
}

func NewOutwardController(DB *gorm.DB) *OutwardController {
	return &OutwardController{DB: DB, repo: repositories.NewOutwardRepository(DB)}
}

func (c *OutwardController) CreateOutward(ctx *fiber.Ctx) error {
	var input repositories.OutwardInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	outward, err := c.repo.Create(input, middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Outward entry created successfully", "data": outward})
}

func (c *OutwardController) GetAllOutwards(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	productID := ctx.QueryInt("product_id", 0)

	outwards, count, err := c.repo.Query(middleware.CurrentUser(ctx), uint(productID), page, limit)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Outward entries found",
		"data": fiber.Map{
			"outwards":      outwards,
			"page":          page,
			"limit":         limit,
			"total_results": count,
		},
	})
}

func (c *OutwardController) GetOutwardByID(ctx *fiber.Ctx) error {
	id, err := parseSnowflakeParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	outward, err := c.repo.GetByID(id, middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outward entry found", "data": outward})
}
