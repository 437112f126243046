package repositories

import (
	"errors"

	"plant-stock/models"
	"plant-stock/utils"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type ProductInput struct {
	ItemCode      string  `json:"item_code" validate:"required"`
	DesignName    string  `json:"design_name" validate:"required"`
	DesignCode    string  `json:"design_code"`
	Colour        string  `json:"colour"`
	UnitType      string  `json:"unit_type"`
	BuyPrice      float64 `json:"buy_price" validate:"min=0"`
	SellPrice     float64 `json:"sell_price" validate:"min=0"`
	CategoryID    *uint   `json:"category_id"`
	OpeningStock  int     `json:"opening_stock" validate:"min=0"`
	MinStockAlert int     `json:"min_stock_alert" validate:"min=0"`
}

func (r *ProductRepository) Create(input ProductInput, user models.CurrentUser) (*models.Product, error) {
	var existing models.Product
	if err := r.db.Where("item_code = ?", input.ItemCode).First(&existing).Error; err == nil {
		return nil, utils.NewBadRequest("Item code already exists")
	}

	product := models.Product{
		ItemCode:      input.ItemCode,
		DesignName:    input.DesignName,
		DesignCode:    input.DesignCode,
		Colour:        input.Colour,
		UnitType:      input.UnitType,
		BuyPrice:      input.BuyPrice,
		SellPrice:     input.SellPrice,
		CategoryID:    input.CategoryID,
		PlantID:       user.PlantID,
		OpeningStock:  input.OpeningStock,
		CurrentStock:  input.OpeningStock,
		MinStockAlert: input.MinStockAlert,
		CreatedBy:     int(user.ID),
		UpdatedBy:     int(user.ID),
	}

	if err := r.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetByID(productID uint, user models.CurrentUser) (*models.Product, error) {
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

func (r *ProductRepository) Query(user models.CurrentUser, page, limit int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.Model(&models.Product{}).Where("plant_id = ?", user.PlantID)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	return products, count, err
}

// Update mengubah data master produk. OpeningStock baseline tidak
// pernah diubah setelah create.
func (r *ProductRepository) Update(productID uint, input ProductInput, user models.CurrentUser) (*models.Product, error) {
	product, err := r.GetByID(productID, user)
	if err != nil {
		return nil, err
	}

	if input.ItemCode != "" && input.ItemCode != product.ItemCode {
		var existing models.Product
		if err := r.db.Where("item_code = ?", input.ItemCode).First(&existing).Error; err == nil {
			return nil, utils.NewBadRequest("Item code already taken")
		}
		product.ItemCode = input.ItemCode
	}

	product.DesignName = input.DesignName
	product.DesignCode = input.DesignCode
	product.Colour = input.Colour
	product.UnitType = input.UnitType
	product.BuyPrice = input.BuyPrice
	product.SellPrice = input.SellPrice
	product.CategoryID = input.CategoryID
	product.MinStockAlert = input.MinStockAlert
	product.UpdatedBy = int(user.ID)

	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete menghapus produk hanya kalau belum pernah dipakai di ledger.
func (r *ProductRepository) Delete(productID uint, user models.CurrentUser) error {
	product, err := r.GetByID(productID, user)
	if err != nil {
		return err
	}

	var stockCount, inwardCount, outwardCount int64
	if err := r.db.Model(&models.Stock{}).Where("product_id = ?", productID).Count(&stockCount).Error; err != nil {
		return err
	}
	if err := r.db.Model(&models.Inward{}).Where("product_id = ?", productID).Count(&inwardCount).Error; err != nil {
		return err
	}
	if err := r.db.Model(&models.Outward{}).Where("product_id = ?", productID).Count(&outwardCount).Error; err != nil {
		return err
	}

	if stockCount > 0 || inwardCount > 0 || outwardCount > 0 {
		return utils.NewBadRequest("Product cannot be deleted because it is used in stock, inward, or outward records")
	}

	product.DeletedBy = int(user.ID)
	if err := r.db.Select("deleted_by").Where("id = ?", productID).Updates(product).Error; err != nil {
		return err
	}
	return r.db.Delete(product).Error
}
