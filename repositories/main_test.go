package repositories

import (
	"fmt"
	"os"
	"testing"

	"plant-stock/controllers/idgen"
	"plant-stock/migration"
	"plant-stock/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// cache=shared membuat koneksi berbagi satu memory DB, jadi tabel
	// lama harus dibuang sebelum test berikutnya.
	require.NoError(t, db.Migrator().DropTable(
		&models.Plant{}, &models.User{}, &models.Category{}, &models.Supplier{},
		&models.Product{}, &models.Stock{}, &models.Inward{}, &models.Outward{},
		&models.MonthlyReport{},
	))
	require.NoError(t, migration.Migrate(db))

	return db
}

func seedPlant(t *testing.T, db *gorm.DB, code string) *models.Plant {
	t.Helper()
	plant := models.Plant{Code: code, Name: "Plant " + code}
	require.NoError(t, db.Create(&plant).Error)
	return &plant
}

func seedUser(t *testing.T, db *gorm.DB, role string, plantID uint) models.CurrentUser {
	t.Helper()
	user := models.User{
		Username:     fmt.Sprintf("%s-user-%d", role, plantID),
		Name:         role,
		Email:        fmt.Sprintf("%s-%d@test.local", role, plantID),
		MobileNumber: fmt.Sprintf("08%s%d", role, plantID),
		Role:         role,
		PlantID:      plantID,
	}
	require.NoError(t, db.Create(&user).Error)
	return models.CurrentUser{ID: user.ID, Role: role, PlantID: plantID}
}

func seedProduct(t *testing.T, db *gorm.DB, plantID uint, itemCode string, openingStock int) *models.Product {
	t.Helper()
	product := models.Product{
		ItemCode:     itemCode,
		DesignName:   "Design " + itemCode,
		UnitType:     "PCS",
		PlantID:      plantID,
		OpeningStock: openingStock,
		CurrentStock: openingStock,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func seedSupplier(t *testing.T, db *gorm.DB, plantID uint, code string) *models.Supplier {
	t.Helper()
	supplier := models.Supplier{Code: code, Name: "Supplier " + code, PlantID: plantID}
	require.NoError(t, db.Create(&supplier).Error)
	return &supplier
}
