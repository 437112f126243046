package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
