package database

import (
	"log"

	"plant-stock/config"
	"plant-stock/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedPlant(db)
	SeedCategory(db)
	SeedAdminUser(db)
}

func SeedPlant(db *gorm.DB) {
	plant := models.Plant{
		Code:     "PLANT-01",
		Name:     "Main Plant",
		Location: "Head Office",
	}

	var existing models.Plant
	if err := db.Where("code = ?", plant.Code).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&plant).Error; err != nil {
				log.Fatalf("Failed to seed plant: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedCategory(db *gorm.DB) {
	categories := []models.Category{
		{Code: "FABRIC", Name: "FABRIC"},
		{Code: "YARN", Name: "YARN"},
	}

	for _, c := range categories {
		var existing models.Category
		if err := db.Where("code = ?", c.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var plant models.Plant
	if err := db.Where("code = ?", "PLANT-01").First(&plant).Error; err != nil {
		log.Fatalf("Plant seed missing: %v", err)
	}

	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Username:     "admin",
		Password:     string(hashed),
		Name:         "Administrator",
		Email:        "admin@localhost",
		MobileNumber: "0000000000",
		Role:         config.RoleAdmin,
		PlantID:      plant.ID,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}
