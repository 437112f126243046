package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	PlantID   uint   `json:"plant_id"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
