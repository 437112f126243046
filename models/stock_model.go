package models

import (
	"time"

	"gorm.io/gorm"
)

// Stock adalah ledger harian: satu baris per (product, tanggal).
// Invariant: ClosingStock = OpeningStock + InwardQty - OutwardQty.
type Stock struct {
	gorm.Model
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_stock_product_date"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	PlantID   uint      `json:"plant_id"`
	Date      time.Time `json:"date" gorm:"uniqueIndex:idx_stock_product_date"`

	OpeningStock int `json:"opening_stock" gorm:"default:0"`
	InwardQty    int `json:"inward_qty" gorm:"default:0"`
	OutwardQty   int `json:"outward_qty" gorm:"default:0"`
	ClosingStock int `json:"closing_stock" gorm:"default:0"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// MonthlyReport adalah agregat turunan, selalu bisa dihitung ulang
// dari Stock + Inward + Outward.
type MonthlyReport struct {
	gorm.Model
	ProductID uint    `json:"product_id" gorm:"uniqueIndex:idx_report_product_month"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Month     int     `json:"month" gorm:"uniqueIndex:idx_report_product_month"`
	Year      int     `json:"year" gorm:"uniqueIndex:idx_report_product_month"`
	PlantID   uint    `json:"plant_id" gorm:"uniqueIndex:idx_report_product_month"`

	OpeningStock int       `json:"opening_stock" gorm:"default:0"`
	InwardQty    int       `json:"inward_qty" gorm:"default:0"`
	OutwardQty   int       `json:"outward_qty" gorm:"default:0"`
	ClosingStock int       `json:"closing_stock" gorm:"default:0"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// TruncateDay memotong timestamp ke jam 00:00 waktu lokal.
// Satu timezone per deployment, plant multi-timezone di luar scope.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
