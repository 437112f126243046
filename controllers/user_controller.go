package controllers

import (
	"errors"

	"plant-stock/config"
	"plant-stock/middleware"
	"plant-stock/models"
	"plant-stock/repositories"
	"plant-stock/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	service *services.UserService
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB, service: services.NewUserService(repositories.NewUserRepository(DB))}
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput struct {
		Username     string `json:"username" validate:"required,min=3"`
		Name         string `json:"name" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		MobileNumber string `json:"mobile_number" validate:"required,min=8"`
		Password     string `json:"password" validate:"required,min=6"`
		Role         string `json:"role" validate:"required"`
		PlantID      uint   `json:"plant_id" validate:"required"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !config.IsValidRole(userInput.Role) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	actor := middleware.CurrentUser(ctx)

	// Tidak boleh membuat user dengan role di atas role sendiri
	if !config.IsAtLeast(actor.Role, userInput.Role) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot create a user with a higher role than your own"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Username:     userInput.Username,
		Name:         userInput.Name,
		Email:        userInput.Email,
		MobileNumber: userInput.MobileNumber,
		Password:     string(hashed),
		Role:         userInput.Role,
		PlantID:      userInput.PlantID,
		CreatedBy:    int(actor.ID),
	}

	if err := c.service.CreateUser(&user); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	user, err := c.service.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": user, "success": true})
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := c.service.GetAllUsers(middleware.CurrentUser(ctx).PlantID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    users,
		"total":   len(users),
		"success": true,
	})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var userInput struct {
		Username     string `json:"username" validate:"required,min=3"`
		Name         string `json:"name" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		MobileNumber string `json:"mobile_number" validate:"required,min=8"`
		Password     string `json:"password"` // opsional saat update
		Role         string `json:"role" validate:"required"`
		PlantID      uint   `json:"plant_id" validate:"required"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !config.IsValidRole(userInput.Role) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	actor := middleware.CurrentUser(ctx)
	if !config.IsAtLeast(actor.Role, userInput.Role) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot assign a higher role than your own"})
	}

	user, err := c.service.GetUserByID(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Username = userInput.Username
	user.Name = userInput.Name
	user.Email = userInput.Email
	user.MobileNumber = userInput.MobileNumber
	user.Role = userInput.Role
	user.PlantID = userInput.PlantID
	user.UpdatedBy = int(actor.ID)

	if userInput.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.Password = string(hashed)
	}

	if err := c.service.UpdateUser(user); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user.DeletedBy = int(middleware.CurrentUser(ctx).ID)

	// Hanya menyimpan field yang dipilih dengan menggunakan Select
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.service.DeleteUser(uint(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}

func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	user, err := c.service.GetUserByID(middleware.CurrentUser(ctx).ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var userProfile struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Plant    string `json:"plant"`
	}

	userProfile.Username = user.Username
	userProfile.Name = user.Name
	userProfile.Email = user.Email
	userProfile.Role = user.Role
	userProfile.Plant = user.Plant.Name

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": userProfile, "success": true})
}
