package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"unique"`
	Password     string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique"`
	MobileNumber string `json:"mobile_number" gorm:"unique"`
	Role         string `json:"role"`
	PlantID      uint   `json:"plant_id"`
	Plant        Plant  `json:"plant" gorm:"foreignKey:PlantID"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

// CurrentUser adalah identitas actor hasil parsing JWT,
// dipakai semua repository untuk cek role dan plant scope.
type CurrentUser struct {
	ID      uint   `json:"id"`
	Role    string `json:"role"`
	PlantID uint   `json:"plant_id"`
}
