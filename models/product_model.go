package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	ItemCode   string  `json:"item_code" gorm:"unique"`
	DesignName string  `json:"design_name"`
	DesignCode string  `json:"design_code"`
	Colour     string  `json:"colour"`
	UnitType   string  `json:"unit_type"`
	BuyPrice   float64 `json:"buy_price" gorm:"default:0"`
	SellPrice  float64 `json:"sell_price" gorm:"default:0"`
	CategoryID *uint   `json:"category_id"`
	PlantID    uint    `json:"plant_id"`

	// OpeningStock adalah stok awal saat produk didaftarkan,
	// tidak pernah berubah setelah create.
	OpeningStock int `json:"opening_stock" gorm:"default:0"`
	// CurrentStock adalah cache running total, dimutasi oleh
	// inward APPROVED dan outward dalam transaksi yang sama.
	CurrentStock  int `json:"current_stock" gorm:"default:0"`
	MinStockAlert int `json:"min_stock_alert" gorm:"default:0"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
