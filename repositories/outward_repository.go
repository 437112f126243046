package repositories

import (
	"errors"
	"time"

	"plant-stock/controllers/idgen"
	"plant-stock/models"
	"plant-stock/types"
	"plant-stock/utils"

	"gorm.io/gorm"
)

type OutwardRepository struct {
	db    *gorm.DB
	stock *StockRepository
}

func NewOutwardRepository(db *gorm.DB) *OutwardRepository {
	return &OutwardRepository{db: db, stock: NewStockRepository(db)}
}

type OutwardInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Remarks   string `json:"remarks"`
}

// Create menerima penarikan hanya kalau stok tersedia mencukupi,
// lalu membuat record Outward dan debit ledger dalam satu transaksi.
func (r *OutwardRepository) Create(input OutwardInput, user models.CurrentUser) (*models.Outward, error) {
	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	var product models.Product
	if err := lockForUpdate(tx).First(&product, input.ProductID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Product not found")
		}
		return nil, err
	}
	if product.PlantID != user.PlantID {
		tx.Rollback()
		return nil, utils.NewForbidden("You can only create outward entries for products in your plant")
	}

	available, err := r.stock.AvailableStock(tx, &product)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if available < input.Quantity {
		tx.Rollback()
		return nil, utils.NewBadRequest("Insufficient stock. Available: %d, Requested: %d",
			available, input.Quantity)
	}

	outward := models.Outward{
		ID:          types.SnowflakeID(idgen.GenerateID()),
		ProductID:   product.ID,
		PlantID:     user.PlantID,
		Quantity:    input.Quantity,
		Remarks:     input.Remarks,
		Date:        time.Now(),
		CreatedByID: user.ID,
	}

	if err := tx.Create(&outward).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	today := models.TruncateDay(outward.Date)
	if err := r.stock.DebitOutward(tx, &product, today, input.Quantity, user.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("current_stock", gorm.Expr("current_stock - ?", input.Quantity)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewConflict("Failed to commit outward transaction: %s", err.Error())
	}

	return &outward, nil
}

func (r *OutwardRepository) GetByID(outwardID types.SnowflakeID, user models.CurrentUser) (*models.Outward, error) {
	var outward models.Outward
	err := r.db.Preload("Product").Preload("CreatedUser").
		First(&outward, "id = ?", outwardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Outward entry not found")
		}
		return nil, err
	}
	if outward.PlantID != user.PlantID {
		return nil, utils.NewForbidden("You can only access outward entries in your plant")
	}
	return &outward, nil
}

// Query mengambil daftar outward plant milik user, paginated.
func (r *OutwardRepository) Query(user models.CurrentUser, productID uint, page, limit int) ([]models.Outward, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.Model(&models.Outward{}).Where("plant_id = ?", user.PlantID)
	if productID > 0 {
		query = query.Where("product_id = ?", productID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var outwards []models.Outward
	err := query.Preload("Product").Preload("CreatedUser").
		Order("date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&outwards).Error
	return outwards, count, err
}
