package repositories

import (
	"errors"
	"strings"
	"time"

	"plant-stock/models"
	"plant-stock/utils"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db    *gorm.DB
	stock *StockRepository
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db, stock: NewStockRepository(db)}
}

// GetMonthly mengembalikan laporan bulanan dari cache kalau ada,
// kalau tidak hitung dari ledger lalu simpan.
func (r *ReportRepository) GetMonthly(productID uint, month, year int, user models.CurrentUser) (*models.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, utils.NewBadRequest("Invalid month: %d", month)
	}

	product, err := r.checkProduct(productID, user)
	if err != nil {
		return nil, err
	}

	var existing models.MonthlyReport
	err = r.db.Preload("Product").
		Where("product_id = ? AND month = ? AND year = ? AND plant_id = ?",
			productID, month, year, user.PlantID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return r.generate(product, month, year)
}

// Generate menghitung ulang laporan bulanan dan meng-upsert cache.
// Deterministik: tanpa mutasi ledger di antaranya, dua kali generate
// menghasilkan angka yang sama.
func (r *ReportRepository) Generate(productID uint, month, year int, user models.CurrentUser) (*models.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, utils.NewBadRequest("Invalid month: %d", month)
	}

	product, err := r.checkProduct(productID, user)
	if err != nil {
		return nil, err
	}

	return r.generate(product, month, year)
}

// GenerateAll dipakai cron akhir bulan untuk semua produk.
func (r *ReportRepository) GenerateAll(month, year int) error {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return err
	}

	for i := range products {
		if _, err := r.generate(&products[i], month, year); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReportRepository) checkProduct(productID uint, user models.CurrentUser) (*models.Product, error) {
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
	return &product, nil
}

func (r *ReportRepository) generate(product *models.Product, month, year int) (*models.MonthlyReport, error) {
	startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	// Opening = closing terakhir sebelum awal bulan, atau baseline produk.
	opening, err := r.stock.PreviousClosing(r.db, product, startOfMonth)
	if err != nil {
		return nil, err
	}

	var inwardQty int64
	err = r.db.Model(&models.Inward{}).
		Where("product_id = ? AND date >= ? AND date < ? AND status = ?",
			product.ID, startOfMonth, endOfMonth, models.InwardApproved).
		Select("COALESCE(SUM(final_qty), 0)").
		Scan(&inwardQty).Error
	if err != nil {
		return nil, err
	}

	var outwardQty int64
	err = r.db.Model(&models.Outward{}).
		Where("product_id = ? AND date >= ? AND date < ?",
			product.ID, startOfMonth, endOfMonth).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&outwardQty).Error
	if err != nil {
		return nil, err
	}

	report := models.MonthlyReport{
		ProductID:    product.ID,
		PlantID:      product.PlantID,
		Month:        month,
		Year:         year,
		OpeningStock: opening,
		InwardQty:    int(inwardQty),
		OutwardQty:   int(outwardQty),
		ClosingStock: opening + int(inwardQty) - int(outwardQty),
		GeneratedAt:  time.Now(),
	}

	var existing models.MonthlyReport
	err = r.db.Where("product_id = ? AND month = ? AND year = ? AND plant_id = ?",
		product.ID, month, year, product.PlantID).
		First(&existing).Error
	if err == nil {
		existing.OpeningStock = report.OpeningStock
		existing.InwardQty = report.InwardQty
		existing.OutwardQty = report.OutwardQty
		existing.ClosingStock = report.ClosingStock
		existing.GeneratedAt = report.GeneratedAt
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		existing.Product = *product
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(&report).Error; err != nil {
		return nil, err
	}
	report.Product = *product
	return &report, nil
}

type DailyReportRow struct {
	Date         time.Time `json:"date"`
	ProductID    uint      `json:"product_id"`
	ItemCode     string    `json:"item_code"`
	DesignName   string    `json:"design_name"`
	OpeningStock int       `json:"opening_stock"`
	InwardQty    int       `json:"inward_qty"`
	OutwardQty   int       `json:"outward_qty"`
	ClosingStock int       `json:"closing_stock"`
}

// DailyRange menghasilkan laporan harian per produk untuk satu rentang
// tanggal. Baris Stock yang ada dipakai apa adanya; hari tanpa baris
// diturunkan dari closing sebelumnya plus pergerakan hari itu.
// Hasil diurutkan tanggal naik lalu nama produk, pagination dilakukan
// in-memory di atas hasil yang sudah lengkap.
func (r *ReportRepository) DailyRange(user models.CurrentUser, from, to time.Time, page, limit int) ([]DailyReportRow, int, error) {
	from = models.TruncateDay(from)
	to = models.TruncateDay(to)
	if to.Before(from) {
		return nil, 0, utils.NewBadRequest("Invalid date range")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var products []models.Product
	if err := r.db.Where("plant_id = ?", user.PlantID).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	rows := []DailyReportRow{}

	for i := range products {
		product := products[i]

		var stocks []models.Stock
		if err := r.db.Where("product_id = ? AND date >= ? AND date <= ?",
			product.ID, from, to).Find(&stocks).Error; err != nil {
			return nil, 0, err
		}
		// Key pakai string tanggal, bukan time.Time: lokasi hasil scan
		// driver bisa beda dengan lokasi time.Local.
		byDay := make(map[string]models.Stock, len(stocks))
		for _, s := range stocks {
			byDay[s.Date.Format("2006-01-02")] = s
		}

		running, err := r.stock.PreviousClosing(r.db, &product, from)
		if err != nil {
			return nil, 0, err
		}

		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			row := DailyReportRow{
				Date:       day,
				ProductID:  product.ID,
				ItemCode:   product.ItemCode,
				DesignName: product.DesignName,
			}

			if stock, ok := byDay[day.Format("2006-01-02")]; ok {
				row.OpeningStock = stock.OpeningStock
				row.InwardQty = stock.InwardQty
				row.OutwardQty = stock.OutwardQty
				row.ClosingStock = stock.ClosingStock
			} else {
				inQty, err := r.stock.sumApprovedInward(r.db, product.ID, day)
				if err != nil {
					return nil, 0, err
				}
				outQty, err := r.stock.sumOutward(r.db, product.ID, day)
				if err != nil {
					return nil, 0, err
				}
				row.OpeningStock = running
				row.InwardQty = inQty
				row.OutwardQty = outQty
				row.ClosingStock = running + inQty - outQty
			}

			running = row.ClosingStock
			rows = append(rows, row)
		}
	}

	slices.SortFunc(rows, func(a, b DailyReportRow) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.Before(b.Date) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.DesignName, b.DesignName)
	})

	total := len(rows)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return rows[start:end], total, nil
}
