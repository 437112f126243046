package controllers

import (
	"encoding/json"
	"strconv"

	"plant-stock/middleware"
	"plant-stock/repositories"
	"plant-stock/types"
	"plant-stock/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InwardController struct {
	DB   *gorm.DB
	repo *repositories.InwardRepository
}

func NewInwardController(DB *gorm.DB) *InwardController {
	return &InwardController{DB: DB, repo: repositories.NewInwardRepository(DB)}
}

// CreateInward menerima satu object atau array object sekaligus.
func (c *InwardController) CreateInward(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)
	validate := validator.New()

	body := ctx.Body()

	// Deteksi payload array untuk input batch
	var inputs []repositories.InwardInput
	if err := json.Unmarshal(body, &inputs); err == nil {
		for _, input := range inputs {
			if err := validate.Struct(input); err != nil {
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
		}

		results, err := c.repo.CreateBatch(inputs, user)
		if err != nil {
			return utils.RespondError(ctx, err)
		}
		return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Inward entries created successfully", "data": results})
	}

	var input repositories.InwardInput
	if err := json.Unmarshal(body, &input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inward, err := c.repo.Create(input, user)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Inward entry created successfully", "data": inward})
}

func (c *InwardController) GetAllInwards(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	status := ctx.Query("status")

	inwards, count, err := c.repo.Query(middleware.CurrentUser(ctx), status, page, limit)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inward entries found",
		"data": fiber.Map{
			"inwards":       inwards,
			"page":          page,
			"limit":         limit,
			"total_results": count,
		},
	})
}

func (c *InwardController) GetPendingInwards(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	inwards, count, err := c.repo.PendingList(middleware.CurrentUser(ctx), page, limit)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Pending inward entries found",
		"data": fiber.Map{
			"inwards":       inwards,
			"page":          page,
			"limit":         limit,
			"total_results": count,
		},
	})
}

func (c *InwardController) GetInwardByID(ctx *fiber.Ctx) error {
	id, err := parseSnowflakeParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	inward, err := c.repo.GetByID(id, middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward entry found", "data": inward})
}

func (c *InwardController) ApproveInward(ctx *fiber.Ctx) error {
	id, err := parseSnowflakeParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input repositories.ApprovalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inward, err := c.repo.Approve(id, input, middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward entry approved successfully", "data": inward})
}

func parseSnowflakeParam(ctx *fiber.Ctx) (types.SnowflakeID, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return types.SnowflakeID(id), nil
}
