package jobs

import (
	"testing"
	"time"

	"plant-stock/migration"
	"plant-stock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(
		&models.Plant{}, &models.User{}, &models.Category{}, &models.Supplier{},
		&models.Product{}, &models.Stock{}, &models.Inward{}, &models.Outward{},
		&models.MonthlyReport{},
	))
	require.NoError(t, migration.Migrate(db))

	return db
}

func TestIsLastDayOfMonth(t *testing.T) {
	assert.True(t, isLastDayOfMonth(time.Date(2026, 1, 31, 23, 55, 0, 0, time.Local)))
	assert.True(t, isLastDayOfMonth(time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local)))
	assert.True(t, isLastDayOfMonth(time.Date(2028, 2, 29, 0, 0, 0, 0, time.Local)))
	assert.False(t, isLastDayOfMonth(time.Date(2028, 2, 28, 0, 0, 0, 0, time.Local)))
	assert.False(t, isLastDayOfMonth(time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)))
}

func TestRunDailyStockUpdate(t *testing.T) {
	db := setupTestDB(t)

	plant := models.Plant{Code: "P1", Name: "Plant P1"}
	require.NoError(t, db.Create(&plant).Error)

	product := models.Product{
		ItemCode:     "ITEM-001",
		DesignName:   "Denim",
		PlantID:      plant.ID,
		OpeningStock: 100,
		CurrentStock: 42, // cache sengaja melenceng
	}
	require.NoError(t, db.Create(&product).Error)

	scheduler := NewStockScheduler(db)
	scheduler.RunDailyStockUpdate()

	today := models.TruncateDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var todayRow models.Stock
	require.NoError(t, db.Where("product_id = ? AND date = ?", product.ID, today).First(&todayRow).Error)
	assert.Equal(t, 100, todayRow.OpeningStock)
	assert.Equal(t, 100, todayRow.ClosingStock)

	var tomorrowRow models.Stock
	require.NoError(t, db.Where("product_id = ? AND date = ?", product.ID, tomorrow).First(&tomorrowRow).Error)
	assert.Equal(t, 100, tomorrowRow.OpeningStock)
	assert.Equal(t, 100, tomorrowRow.ClosingStock)

	// Cache current stock tersinkron dengan ledger.
	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 100, fresh.CurrentStock)

	// Jalan kedua kali tidak menduplikasi baris.
	scheduler.RunDailyStockUpdate()
	var count int64
	require.NoError(t, db.Model(&models.Stock{}).
		Where("product_id = ?", product.ID).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
