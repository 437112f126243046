package repositories

import (
	"testing"
	"time"

	"plant-stock/config"
	"plant-stock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutwardDeductsStock(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	incharge := seedUser(t, db, config.RoleShiftIncharge, plant.ID)
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)

	outwardRepo := NewOutwardRepository(db)
	stockRepo := NewStockRepository(db)

	outward, err := outwardRepo.Create(OutwardInput{
		ProductID: product.ID,
		Quantity:  30,
		Remarks:   "dispatch to weaving",
	}, incharge)
	require.NoError(t, err)
	assert.Equal(t, 30, outward.Quantity)

	today := models.TruncateDay(time.Now())
	row := getDayRow(t, stockRepo, product.ID, today)
	assert.Equal(t, 100, row.OpeningStock)
	assert.Equal(t, 30, row.OutwardQty)
	assert.Equal(t, 70, row.ClosingStock)
	assertLedgerInvariant(t, row)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 70, fresh.CurrentStock)
}

func TestOutwardExactBalanceAllowed(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	incharge := seedUser(t, db, config.RoleShiftIncharge, plant.ID)
	product := seedProduct(t, db, plant.ID, "ITEM-001", 100)

	outwardRepo := NewOutwardRepository(db)
	stockRepo := NewStockRepository(db)

	// Menarik persis seluruh stok boleh, closing jadi nol.
	_, err := outwardRepo.Create(OutwardInput{ProductID: product.ID, Quantity: 100}, incharge)
	require.NoError(t, err)

	available, err := stockRepo.AvailableStock(db, product)
	require.NoError(t, err)
	assert.Equal(t, 0, available)

	// Satu unit lagi ditolak.
	_, err = outwardRepo.Create(OutwardInput{ProductID: product.ID, Quantity: 1}, incharge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock. Available: 0, Requested: 1")
}

func TestOutwardIgnoresPendingInward(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	incharge := seedUser(t, db, config.RoleShiftIncharge, plant.ID)
	product := seedProduct(t, db, plant.ID, "ITEM-001", 10)

	inwardRepo := NewInwardRepository(db)
	outwardRepo := NewOutwardRepository(db)

	// Pending inward 50 tidak menambah stok yang bisa ditarik.
	_, err := inwardRepo.Create(InwardInput{
		ProductID:     product.ID,
		Source:        models.SourceManufactured,
		QtySupervisor: 50,
	}, incharge)
	require.NoError(t, err)

	_, err = outwardRepo.Create(OutwardInput{ProductID: product.ID, Quantity: 30}, incharge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock. Available: 10, Requested: 30")
}

func TestOutwardCrossPlantForbidden(t *testing.T) {
	db := setupTestDB(t)
	plant1 := seedPlant(t, db, "P1")
	plant2 := seedPlant(t, db, "P2")
	outsider := seedUser(t, db, config.RoleShiftIncharge, plant2.ID)
	product := seedProduct(t, db, plant1.ID, "ITEM-001", 100)

	outwardRepo := NewOutwardRepository(db)

	_, err := outwardRepo.Create(OutwardInput{ProductID: product.ID, Quantity: 10}, outsider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "your plant")
}
