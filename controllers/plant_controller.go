package controllers

import (
	"errors"

	"plant-stock/middleware"
	"plant-stock/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlantController struct {
	DB *gorm.DB
}

type plantInput struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

func NewPlantController(db *gorm.DB) *PlantController {
	return &PlantController{DB: db}
}

func (c *PlantController) CreatePlant(ctx *fiber.Ctx) error {
	var input plantInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Plant
	if err := c.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Plant code already exists"})
	}

	plant := models.Plant{
		Code:      input.Code,
		Name:      input.Name,
		Location:  input.Location,
		CreatedBy: int(middleware.CurrentUser(ctx).ID),
	}

	if err := c.DB.Create(&plant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Plant created successfully", "data": plant})
}

func (c *PlantController) GetAllPlants(ctx *fiber.Ctx) error {
	var plants []models.Plant
	if err := c.DB.Find(&plants).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plants found", "data": plants})
}

func (c *PlantController) GetPlantByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var plant models.Plant
	if err := c.DB.First(&plant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plant not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plant found", "data": plant})
}

func (c *PlantController) UpdatePlant(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input plantInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var plant models.Plant
	if err := c.DB.First(&plant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plant not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	plant.Code = input.Code
	plant.Name = input.Name
	plant.Location = input.Location
	plant.UpdatedBy = int(middleware.CurrentUser(ctx).ID)

	if err := c.DB.Save(&plant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plant updated successfully", "data": plant})
}

func (c *PlantController) DeletePlant(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var plant models.Plant
	if err := c.DB.First(&plant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plant not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Plant yang masih punya user tidak boleh dihapus
	var userCount int64
	if err := c.DB.Model(&models.User{}).Where("plant_id = ?", id).Count(&userCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if userCount > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Plant cannot be deleted because it still has users"})
	}

	plant.DeletedBy = int(middleware.CurrentUser(ctx).ID)
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&plant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&plant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plant deleted successfully", "data": plant})
}
