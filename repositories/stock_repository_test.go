package repositories

import (
	"testing"
	"time"

	"plant-stock/config"
	"plant-stock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getDayRow(t *testing.T, repo *StockRepository, productID uint, day time.Time) *models.Stock {
	t.Helper()
	var stock models.Stock
	err := repo.db.Where("product_id = ? AND date = ?", productID, day).First(&stock).Error
	require.NoError(t, err)
	return &stock
}

func assertLedgerInvariant(t *testing.T, stock *models.Stock) {
	t.Helper()
	assert.Equal(t, stock.OpeningStock+stock.InwardQty-stock.OutwardQty, stock.ClosingStock,
		"closing must equal opening + inward - outward")
}

func TestDailyLedgerFlow(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	manager := seedUser(t, db, config.RoleManager, plant.ID)
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)
	supplier := seedSupplier(t, db, plant.ID, "SUP-01")

	inwardRepo := NewInwardRepository(db)
	outwardRepo := NewOutwardRepository(db)
	stockRepo := NewStockRepository(db)

	today := models.TruncateDay(time.Now())

	// Supplier inward 30: baseline 100 jadi {100, 30, 0, 130}.
	finalQty := 30
	_, err := inwardRepo.Create(InwardInput{
		ProductID:  product.ID,
		Source:     models.SourceSupplier,
		SupplierID: &supplier.ID,
		FinalQty:   finalQty,
	}, manager)
	require.NoError(t, err)

	row := getDayRow(t, stockRepo, product.ID, today)
	assert.Equal(t, 100, row.OpeningStock)
	assert.Equal(t, 30, row.InwardQty)
	assert.Equal(t, 0, row.OutwardQty)
	assert.Equal(t, 130, row.ClosingStock)
	assertLedgerInvariant(t, row)

	// Outward 50: {100, 30, 50, 80}.
	_, err = outwardRepo.Create(OutwardInput{ProductID: product.ID, Quantity: 50}, manager)
	require.NoError(t, err)

	row = getDayRow(t, stockRepo, product.ID, today)
	assert.Equal(t, 100, row.OpeningStock)
	assert.Equal(t, 30, row.InwardQty)
	assert.Equal(t, 50, row.OutwardQty)
	assert.Equal(t, 80, row.ClosingStock)
	assertLedgerInvariant(t, row)

	// Outward 81 melebihi available 80.
	_, err = outwardRepo.Create(OutwardInput{ProductID: product.ID, Quantity: 81}, manager)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock. Available: 80, Requested: 81")

	available, err := stockRepo.AvailableStock(db, product)
	require.NoError(t, err)
	assert.Equal(t, 80, available)
}

func TestAvailableStockResolution(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)
	stockRepo := NewStockRepository(db)

	// Tanpa riwayat sama sekali: baseline produk.
	available, err := stockRepo.AvailableStock(db, product)
	require.NoError(t, err)
	assert.Equal(t, 100, available)

	// Dengan closing kemarin: closing terakhir menang atas baseline.
	yesterday := models.TruncateDay(time.Now()).AddDate(0, 0, -1)
	require.NoError(t, db.Create(&models.Stock{
		ProductID:    product.ID,
		PlantID:      plant.ID,
		Date:         yesterday,
		OpeningStock: 100,
		InwardQty:    20,
		OutwardQty:   5,
		ClosingStock: 115,
	}).Error)

	available, err = stockRepo.AvailableStock(db, product)
	require.NoError(t, err)
	assert.Equal(t, 115, available)

	// Dengan baris hari ini: running balance hari ini menang.
	today := models.TruncateDay(time.Now())
	require.NoError(t, db.Create(&models.Stock{
		ProductID:    product.ID,
		PlantID:      plant.ID,
		Date:         today,
		OpeningStock: 115,
		InwardQty:    10,
		OutwardQty:   25,
		ClosingStock: 100,
	}).Error)

	available, err = stockRepo.AvailableStock(db, product)
	require.NoError(t, err)
	assert.Equal(t, 100, available)
}

func TestEnsureDayRowIdempotent(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	manager := seedUser(t, db, config.RoleManager, plant.ID)
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)
	supplier := seedSupplier(t, db, plant.ID, "SUP-01")

	inwardRepo := NewInwardRepository(db)
	stockRepo := NewStockRepository(db)
	today := models.TruncateDay(time.Now())

	_, err := inwardRepo.Create(InwardInput{
		ProductID:  product.ID,
		Source:     models.SourceSupplier,
		SupplierID: &supplier.ID,
		FinalQty:   30,
	}, manager)
	require.NoError(t, err)

	require.NoError(t, stockRepo.EnsureDayRow(db, product, today))
	require.NoError(t, stockRepo.EnsureDayRow(db, product, today))

	var count int64
	require.NoError(t, db.Model(&models.Stock{}).
		Where("product_id = ? AND date = ?", product.ID, today).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	row := getDayRow(t, stockRepo, product.ID, today)
	assert.Equal(t, 30, row.InwardQty)
	assert.Equal(t, 130, row.ClosingStock)
}

func TestRollForwardTomorrow(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)
	stockRepo := NewStockRepository(db)

	today := models.TruncateDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	require.NoError(t, db.Create(&models.Stock{
		ProductID:    product.ID,
		PlantID:      plant.ID,
		Date:         today,
		OpeningStock: 100,
		InwardQty:    40,
		OutwardQty:   10,
		ClosingStock: 130,
	}).Error)

	require.NoError(t, stockRepo.RollForwardTomorrow(db, product))
	require.NoError(t, stockRepo.RollForwardTomorrow(db, product))

	var count int64
	require.NoError(t, db.Model(&models.Stock{}).
		Where("product_id = ? AND date = ?", product.ID, tomorrow).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Opening besok = closing hari ini, chain tanpa gap.
	row := getDayRow(t, stockRepo, product.ID, tomorrow)
	assert.Equal(t, 130, row.OpeningStock)
	assert.Equal(t, 0, row.InwardQty)
	assert.Equal(t, 0, row.OutwardQty)
	assert.Equal(t, 130, row.ClosingStock)
	assertLedgerInvariant(t, row)
}

func TestRepairCurrentStock(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)
	stockRepo := NewStockRepository(db)

	today := models.TruncateDay(time.Now())
	require.NoError(t, db.Create(&models.Stock{
		ProductID:    product.ID,
		PlantID:      plant.ID,
		Date:         today,
		OpeningStock: 100,
		InwardQty:    50,
		OutwardQty:   0,
		ClosingStock: 150,
	}).Error)

	// Cache sengaja dibuat melenceng.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("current_stock", 999).Error)

	require.NoError(t, stockRepo.RepairCurrentStock())

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 150, fresh.CurrentStock)
}

func TestStockAlerts(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	user := seedUser(t, db, config.RoleManager, plant.ID)
	stockRepo := NewStockRepository(db)

	low := seedProduct(t, db, plant.ID, "LOW-001", 5)
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", low.ID).
		Update("min_stock_alert", 10).Error)

	ok := seedProduct(t, db, plant.ID, "OK-001", 50)
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", ok.ID).
		Update("min_stock_alert", 10).Error)

	alerts, err := stockRepo.StockAlerts(user)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "LOW-001", alerts[0].Product.ItemCode)
	assert.Equal(t, 5, alerts[0].CurrentStock)
	assert.Equal(t, 5, alerts[0].ShortageAmount)
}

func TestCurrentStockPlantScope(t *testing.T) {
	db := setupTestDB(t)
	plant1 := seedPlant(t, db, "P1")
	plant2 := seedPlant(t, db, "P2")
	outsider := seedUser(t, db, config.RoleManager, plant2.ID)
	product := seedProduct(t, db, plant1.ID, "ITEM-001", 100)

	stockRepo := NewStockRepository(db)
	_, err := stockRepo.CurrentStock(product.ID, outsider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "your plant")
}
