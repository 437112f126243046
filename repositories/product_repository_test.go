package repositories

import (
	"testing"

	"plant-stock/config"
	"plant-stock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateDuplicateItemCode(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	manager := seedUser(t, db, config.RoleManager, plant.ID)

	repo := NewProductRepository(db)

	_, err := repo.Create(ProductInput{ItemCode: "ITEM-001", DesignName: "Denim"}, manager)
	require.NoError(t, err)

	_, err = repo.Create(ProductInput{ItemCode: "ITEM-001", DesignName: "Other"}, manager)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Item code already exists")
}

func TestProductCreateInitializesStock(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	manager := seedUser(t, db, config.RoleManager, plant.ID)

	repo := NewProductRepository(db)

	product, err := repo.Create(ProductInput{
		ItemCode:     "ITEM-001",
		DesignName:   "Denim",
		OpeningStock: 75,
	}, manager)
	require.NoError(t, err)

	assert.Equal(t, 75, product.OpeningStock)
	assert.Equal(t, 75, product.CurrentStock)
	assert.Equal(t, plant.ID, product.PlantID)
}

func TestProductUpdateKeepsBaseline(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	manager := seedUser(t, db, config.RoleManager, plant.ID)

	repo := NewProductRepository(db)

	product, err := repo.Create(ProductInput{
		ItemCode:     "ITEM-001",
		DesignName:   "Denim",
		OpeningStock: 75,
	}, manager)
	require.NoError(t, err)

	// OpeningStock di input update diabaikan, baseline immutable.
	updated, err := repo.Update(product.ID, ProductInput{
		ItemCode:     "ITEM-001",
		DesignName:   "Denim Blue",
		OpeningStock: 999,
	}, manager)
	require.NoError(t, err)

	assert.Equal(t, "Denim Blue", updated.DesignName)
	assert.Equal(t, 75, updated.OpeningStock)
}

func TestProductDeleteBlockedWhenUsed(t *testing.T) {
	db := setupTestDB(t)
	plant := seedPlant(t, db, "P1")
	manager := seedUser(t, db, config.RoleManager, plant.ID)
	supplier := seedSupplier(t, db, plant.ID, "SUP-01")

	productRepo := NewProductRepository(db)
	inwardRepo := NewInwardRepository(db)

	product, err := productRepo.Create(ProductInput{ItemCode: "ITEM-001", DesignName: "Denim"}, manager)
	require.NoError(t, err)

	_, err = inwardRepo.Create(InwardInput{
		ProductID:  product.ID,
		Source:     models.SourceSupplier,
		SupplierID: &supplier.ID,
		FinalQty:   10,
	}, manager)
	require.NoError(t, err)

	err = productRepo.Delete(product.ID, manager)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")
}

func TestProductGetCrossPlantForbidden(t *testing.T) {
	db := setupTestDB(t)
	plant1 := seedPlant(t, db, "P1")
	plant2 := seedPlant(t, db, "P2")
	manager := seedUser(t, db, config.RoleManager, plant1.ID)
	outsider := seedUser(t, db, config.RoleManager, plant2.ID)

	repo := NewProductRepository(db)

	product, err := repo.Create(ProductInput{ItemCode: "ITEM-001", DesignName: "Denim"}, manager)
	require.NoError(t, err)

	_, err = repo.GetByID(product.ID, outsider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "your plant")
}
