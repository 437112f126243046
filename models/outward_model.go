package models

import (
	"time"

	"plant-stock/types"

	"gorm.io/gorm"
)

// Outward adalah satu penarikan barang. Immutable setelah dibuat,
// tidak ada status dan tidak ada pembatalan.
type Outward struct {
	gorm.Model
	ID          types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	ProductID   uint              `json:"product_id"`
	Product     Product           `json:"product" gorm:"foreignKey:ProductID"`
	PlantID     uint              `json:"plant_id"`
	Quantity    int               `json:"quantity"`
	Remarks     string            `json:"remarks"`
	Date        time.Time         `json:"date"`
	CreatedByID uint              `json:"created_by_id"`
	CreatedUser User              `json:"created_by" gorm:"foreignKey:CreatedByID"`
}
