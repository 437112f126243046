package models

import (
	"time"

	"plant-stock/types"

	"gorm.io/gorm"
)

const (
	SourceManufactured = "MANUFACTURED"
	SourceSupplier     = "SUPPLIER"

	InwardPending  = "PENDING"
	InwardApproved = "APPROVED"
)

// Inward adalah satu batch barang masuk. Entry SUPPLIER langsung
// APPROVED saat create. Entry MANUFACTURED mulai PENDING kecuali
// dibuat oleh supervisor ke atas, dan hanya sekali transisi
// PENDING → APPROVED (audit trail, tidak pernah dihapus).
type Inward struct {
	gorm.Model
	ID        types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	ProductID uint              `json:"product_id"`
	Product   Product           `json:"product" gorm:"foreignKey:ProductID"`
	PlantID   uint              `json:"plant_id"`
	Source    string            `json:"source"`

	SupplierID   *uint  `json:"supplier_id" gorm:"default:null"`
	SupplierName string `json:"supplier_name"`
	SupplierCode string `json:"supplier_code"`

	// Kuantitas bertahap untuk source MANUFACTURED.
	ManufacturedQty int `json:"manufactured_qty" gorm:"default:0"`
	QtyIncharge     int `json:"qty_incharge" gorm:"default:0"`
	QtySupervisor   int `json:"qty_supervisor" gorm:"default:0"`

	// FinalQty adalah kuantitas yang benar-benar dikreditkan ke stok.
	FinalQty int `json:"final_qty" gorm:"default:0"`

	// Snapshot running stock produk sesaat sebelum/sesudah entry ini.
	OpeningStock int `json:"opening_stock" gorm:"default:0"`
	ClosingStock int `json:"closing_stock" gorm:"default:0"`

	Status       string    `json:"status" gorm:"default:'PENDING'"`
	CreatedByID  uint      `json:"created_by_id"`
	CreatedUser  User      `json:"created_by" gorm:"foreignKey:CreatedByID"`
	SupervisorID *uint     `json:"supervisor_id" gorm:"default:null"`
	Date         time.Time `json:"date"`
}
