package models

import "gorm.io/gorm"

type Plant struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
