package jobs

import (
	"log"
	"time"

	"plant-stock/config"
	"plant-stock/models"
	"plant-stock/repositories"
	"plant-stock/utils"

	"gorm.io/gorm"
)

// StockScheduler menjalankan dua job harian:
//   - backfill ledger (default 23:50): pastikan setiap produk punya
//     baris stock hari ini dan placeholder besok, sinkronkan cache
//     current stock, lalu kirim email alert stok minimum.
//   - laporan bulanan (default 23:55): di hari terakhir bulan,
//     generate ulang MonthlyReport semua produk.
type StockScheduler struct {
	db     *gorm.DB
	stock  *repositories.StockRepository
	report *repositories.ReportRepository

	lastStockRun  time.Time
	lastReportRun time.Time
}

func NewStockScheduler(db *gorm.DB) *StockScheduler {
	return &StockScheduler{
		db:     db,
		stock:  repositories.NewStockRepository(db),
		report: repositories.NewReportRepository(db),
	}
}

// Start menjalankan scheduler di goroutine sendiri. Ticker dicek tiap
// 30 detik; guard lastRun mencegah job jalan dua kali di menit yang sama.
func (s *StockScheduler) Start() {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for now := range ticker.C {
			s.tick(now)
		}
	}()
}

func (s *StockScheduler) tick(now time.Time) {
	today := models.TruncateDay(now)

	if now.Hour() == config.StockCronHour && now.Minute() == config.StockCronMinute &&
		!s.lastStockRun.Equal(today) {
		s.lastStockRun = today
		s.RunDailyStockUpdate()
	}

	if now.Hour() == config.ReportCronHour && now.Minute() == config.ReportCronMinute &&
		!s.lastReportRun.Equal(today) && isLastDayOfMonth(now) {
		s.lastReportRun = today
		s.RunMonthlyReports(int(now.Month()), now.Year())
	}
}

// RunDailyStockUpdate membackfill ledger hari ini dan roll forward ke
// besok untuk semua produk. Error per produk hanya dilog supaya satu
// produk bermasalah tidak menghentikan sisanya.
func (s *StockScheduler) RunDailyStockUpdate() {
	log.Println("Running daily stock update")

	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		log.Printf("Daily stock update: failed to load products: %v", err)
		return
	}

	today := models.TruncateDay(time.Now())

	for i := range products {
		product := products[i]

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := s.stock.EnsureDayRow(tx, &product, today); err != nil {
				return err
			}
			return s.stock.RollForwardTomorrow(tx, &product)
		})
		if err != nil {
			log.Printf("Daily stock update: product %d: %v", product.ID, err)
		}
	}

	if err := s.stock.RepairCurrentStock(); err != nil {
		log.Printf("Daily stock update: repair current stock: %v", err)
	}

	s.sendLowStockAlerts()

	log.Printf("Daily stock update finished: %d products", len(products))
}

// RunMonthlyReports meng-generate ulang laporan bulanan semua produk.
func (s *StockScheduler) RunMonthlyReports(month, year int) {
	log.Printf("Generating monthly reports for %d-%02d", year, month)

	if err := s.report.GenerateAll(month, year); err != nil {
		log.Printf("Monthly report generation: %v", err)
		return
	}

	log.Println("Monthly report generation finished")
}

func (s *StockScheduler) sendLowStockAlerts() {
	items := []utils.StockAlertItem{}

	// Product.CurrentStock baru saja disinkronkan oleh RepairCurrentStock,
	// jadi cache bisa dipakai langsung.
	var fresh []models.Product
	if err := s.db.Find(&fresh).Error; err != nil {
		log.Printf("Low stock alert: failed to load products: %v", err)
		return
	}

	for _, p := range fresh {
		if p.CurrentStock <= p.MinStockAlert {
			items = append(items, utils.StockAlertItem{
				ItemCode:      p.ItemCode,
				DesignName:    p.DesignName,
				CurrentStock:  p.CurrentStock,
				MinStockAlert: p.MinStockAlert,
				Shortage:      p.MinStockAlert - p.CurrentStock,
			})
		}
	}

	if len(items) == 0 {
		return
	}

	if err := utils.SendStockAlertEmail(items); err != nil {
		log.Printf("Low stock alert: failed to send email: %v", err)
	}
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}
