package migration

import (
	"plant-stock/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Plant{},
		&models.User{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.Stock{},
		&models.Inward{},
		&models.Outward{},
		&models.MonthlyReport{},
	)
}
