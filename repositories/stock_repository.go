package repositories

import (
	"errors"
	"time"

	"plant-stock/models"
	"plant-stock/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRepository menjaga ledger harian: satu baris Stock per
// (product, tanggal) dengan ClosingStock = OpeningStock + InwardQty - OutwardQty.
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// lockForUpdate menambahkan SELECT ... FOR UPDATE supaya mutasi
// read-modify-write pada baris yang sama tidak saling menimpa.
// SQLite (dipakai di test) tidak mendukung klausa ini, transaksinya
// sudah serialized di level database.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// findDayRow mengambil baris stock untuk satu hari dengan row lock.
func (r *StockRepository) findDayRow(tx *gorm.DB, productID uint, day time.Time) (*models.Stock, error) {
	var stock models.Stock
	err := lockForUpdate(tx).
		Where("product_id = ? AND date = ?", productID, day).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

// PreviousClosing mencari closing stock terakhir sebelum tanggal tertentu.
// Kalau belum ada riwayat sama sekali, pakai opening stock baseline produk.
func (r *StockRepository) PreviousClosing(tx *gorm.DB, product *models.Product, day time.Time) (int, error) {
	var last models.Stock
	err := tx.Where("product_id = ? AND date < ?", product.ID, day).
		Order("date desc").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.OpeningStock, nil
		}
		return 0, err
	}
	return last.ClosingStock, nil
}

// CreditInward menambahkan qty ke kolom inward hari tersebut.
// Dipanggil tepat satu kali per inward yang di-approve; idempotensi
// dijamin oleh transisi tunggal di InwardRepository.
func (r *StockRepository) CreditInward(tx *gorm.DB, product *models.Product, day time.Time, qty int, userID uint) error {
	stock, err := r.findDayRow(tx, product.ID, day)
	if err != nil {
		return err
	}

	if stock != nil {
		stock.InwardQty += qty
		stock.ClosingStock = stock.OpeningStock + stock.InwardQty - stock.OutwardQty
		if stock.ClosingStock < 0 {
			return utils.NewBadRequest("Stock adjustment would make closing stock negative for product %d", product.ID)
		}
		stock.UpdatedBy = int(userID)
		return tx.Save(stock).Error
	}

	opening, err := r.PreviousClosing(tx, product, day)
	if err != nil {
		return err
	}

	newStock := models.Stock{
		ProductID:    product.ID,
		PlantID:      product.PlantID,
		Date:         day,
		OpeningStock: opening,
		InwardQty:    qty,
		OutwardQty:   0,
		ClosingStock: opening + qty,
		CreatedBy:    int(userID),
		UpdatedBy:    int(userID),
	}
	if newStock.ClosingStock < 0 {
		return utils.NewBadRequest("Stock adjustment would make closing stock negative for product %d", product.ID)
	}
	return tx.Create(&newStock).Error
}

// DebitOutward menambahkan qty ke kolom outward hari tersebut.
// Kecukupan stok sudah dicek oleh OutwardRepository, di sini hanya
// dijaga supaya closing tidak pernah minus.
func (r *StockRepository) DebitOutward(tx *gorm.DB, product *models.Product, day time.Time, qty int, userID uint) error {
	stock, err := r.findDayRow(tx, product.ID, day)
	if err != nil {
		return err
	}

	if stock != nil {
		stock.OutwardQty += qty
		stock.ClosingStock = stock.OpeningStock + stock.InwardQty - stock.OutwardQty
		if stock.ClosingStock < 0 {
			return utils.NewBadRequest("Stock debit would make closing stock negative for product %d", product.ID)
		}
		stock.UpdatedBy = int(userID)
		return tx.Save(stock).Error
	}

	opening, err := r.PreviousClosing(tx, product, day)
	if err != nil {
		return err
	}
	if opening-qty < 0 {
		return utils.NewBadRequest("Stock debit would make closing stock negative for product %d", product.ID)
	}

	newStock := models.Stock{
		ProductID:    product.ID,
		PlantID:      product.PlantID,
		Date:         day,
		OpeningStock: opening,
		InwardQty:    0,
		OutwardQty:   qty,
		ClosingStock: opening - qty,
		CreatedBy:    int(userID),
		UpdatedBy:    int(userID),
	}
	return tx.Create(&newStock).Error
}

// EnsureDayRow membuat baris stock untuk satu hari kalau belum ada,
// dengan inward/outward dijumlahkan dari entry hari itu. No-op kalau
// baris sudah ada, aman dipanggil berulang oleh cron.
func (r *StockRepository) EnsureDayRow(tx *gorm.DB, product *models.Product, day time.Time) error {
	stock, err := r.findDayRow(tx, product.ID, day)
	if err != nil {
		return err
	}
	if stock != nil {
		return nil
	}

	opening, err := r.PreviousClosing(tx, product, day)
	if err != nil {
		return err
	}

	inwardQty, err := r.sumApprovedInward(tx, product.ID, day)
	if err != nil {
		return err
	}
	outwardQty, err := r.sumOutward(tx, product.ID, day)
	if err != nil {
		return err
	}

	newStock := models.Stock{
		ProductID:    product.ID,
		PlantID:      product.PlantID,
		Date:         day,
		OpeningStock: opening,
		InwardQty:    inwardQty,
		OutwardQty:   outwardQty,
		ClosingStock: opening + inwardQty - outwardQty,
	}
	return tx.Create(&newStock).Error
}

// RollForwardTomorrow menyiapkan baris placeholder untuk besok dari
// closing stock hari ini, supaya ledger tidak punya gap tanggal.
func (r *StockRepository) RollForwardTomorrow(tx *gorm.DB, product *models.Product) error {
	today := models.TruncateDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	existing, err := r.findDayRow(tx, product.ID, tomorrow)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	// Closing hari ini (atau closing terakhir yang ada) jadi opening besok.
	opening, err := r.PreviousClosing(tx, product, tomorrow)
	if err != nil {
		return err
	}

	newStock := models.Stock{
		ProductID:    product.ID,
		PlantID:      product.PlantID,
		Date:         tomorrow,
		OpeningStock: opening,
		InwardQty:    0,
		OutwardQty:   0,
		ClosingStock: opening,
	}
	return tx.Create(&newStock).Error
}

func (r *StockRepository) sumApprovedInward(tx *gorm.DB, productID uint, day time.Time) (int, error) {
	var total int64
	end := day.AddDate(0, 0, 1)
	err := tx.Model(&models.Inward{}).
		Where("product_id = ? AND date >= ? AND date < ? AND status = ?",
			productID, day, end, models.InwardApproved).
		Select("COALESCE(SUM(final_qty), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *StockRepository) sumOutward(tx *gorm.DB, productID uint, day time.Time) (int, error) {
	var total int64
	end := day.AddDate(0, 0, 1)
	err := tx.Model(&models.Outward{}).
		Where("product_id = ? AND date >= ? AND date < ?", productID, day, end).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}

// AvailableStock menghitung stok yang bisa ditarik sekarang:
// running balance hari ini kalau barisnya ada, kalau tidak closing
// terakhir sebelum hari ini, kalau tidak baseline produk.
func (r *StockRepository) AvailableStock(tx *gorm.DB, product *models.Product) (int, error) {
	today := models.TruncateDay(time.Now())

	stock, err := r.findDayRow(tx, product.ID, today)
	if err != nil {
		return 0, err
	}
	if stock != nil {
		return stock.OpeningStock + stock.InwardQty - stock.OutwardQty, nil
	}

	return r.PreviousClosing(tx, product, today)
}

type CurrentStockView struct {
	ProductID    uint           `json:"product_id"`
	Date         time.Time      `json:"date"`
	OpeningStock int            `json:"opening_stock"`
	InwardQty    int            `json:"inward_qty"`
	OutwardQty   int            `json:"outward_qty"`
	ClosingStock int            `json:"closing_stock"`
	Product      models.Product `json:"product"`
}

// CurrentStock mengembalikan posisi stok hari ini untuk satu produk.
// Kalau belum ada baris hari ini, posisi diturunkan dari closing terakhir.
func (r *StockRepository) CurrentStock(productID uint, user models.CurrentUser) (*CurrentStockView, error) {
	var product models.Product
	if err := r.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Product not found")
		}
		return nil, err
	}
	if product.PlantID != user.PlantID {
		return nil, utils.NewForbidden("You can only access products in your plant")
	}

	today := models.TruncateDay(time.Now())

	var stock models.Stock
	err := r.db.Where("product_id = ? AND date = ?", productID, today).First(&stock).Error
	if err == nil {
		return &CurrentStockView{
			ProductID:    productID,
			Date:         stock.Date,
			OpeningStock: stock.OpeningStock,
			InwardQty:    stock.InwardQty,
			OutwardQty:   stock.OutwardQty,
			ClosingStock: stock.ClosingStock,
			Product:      product,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	closing, err := r.PreviousClosing(r.db, &product, today)
	if err != nil {
		return nil, err
	}
	return &CurrentStockView{
		ProductID:    productID,
		Date:         today,
		OpeningStock: closing,
		InwardQty:    0,
		OutwardQty:   0,
		ClosingStock: closing,
		Product:      product,
	}, nil
}

// StockHistory mengambil riwayat ledger plant milik user, paginated.
func (r *StockRepository) StockHistory(user models.CurrentUser, productID uint, page, limit int) ([]models.Stock, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.Model(&models.Stock{}).Where("plant_id = ?", user.PlantID)
	if productID > 0 {
		query = query.Where("product_id = ?", productID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var stocks []models.Stock
	err := query.Preload("Product").
		Order("date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&stocks).Error
	return stocks, count, err
}

type StockAlert struct {
	Product        models.Product `json:"product"`
	CurrentStock   int            `json:"current_stock"`
	ShortageAmount int            `json:"shortage_amount"`
}

// StockAlerts mencari produk yang stoknya <= batas minimum.
func (r *StockRepository) StockAlerts(user models.CurrentUser) ([]StockAlert, error) {
	var products []models.Product
	if err := r.db.Where("plant_id = ?", user.PlantID).Find(&products).Error; err != nil {
		return nil, err
	}

	today := models.TruncateDay(time.Now())
	alerts := []StockAlert{}

	for i := range products {
		product := products[i]

		current := product.OpeningStock
		var stock models.Stock
		err := r.db.Where("product_id = ? AND date = ?", product.ID, today).First(&stock).Error
		if err == nil {
			current = stock.ClosingStock
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			current, err = r.PreviousClosing(r.db, &product, today)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}

		if current <= product.MinStockAlert {
			alerts = append(alerts, StockAlert{
				Product:        product,
				CurrentStock:   current,
				ShortageAmount: product.MinStockAlert - current,
			})
		}
	}

	return alerts, nil
}

// RepairCurrentStock menyamakan cache Product.CurrentStock dengan
// posisi ledger terbaru. Dipanggil cron setelah backfill harian.
func (r *StockRepository) RepairCurrentStock() error {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return err
	}

	for i := range products {
		product := products[i]

		var last models.Stock
		current := product.OpeningStock
		err := r.db.Where("product_id = ?", product.ID).
			Order("date desc").
			First(&last).Error
		if err == nil {
			current = last.ClosingStock
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if current != product.CurrentStock {
			if err := r.db.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("current_stock", current).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
