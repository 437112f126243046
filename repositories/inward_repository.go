package repositories

import (
	"errors"
	"time"

	"plant-stock/config"
	"plant-stock/controllers/idgen"
	"plant-stock/models"
	"plant-stock/types"
	"plant-stock/utils"

	"gorm.io/gorm"
)

type InwardRepository struct {
	db    *gorm.DB
	stock *StockRepository
}

func NewInwardRepository(db *gorm.DB) *InwardRepository {
	return &InwardRepository{db: db, stock: NewStockRepository(db)}
}

type InwardInput struct {
	ProductID       uint   `json:"product_id" validate:"required"`
	Source          string `json:"source" validate:"required,oneof=MANUFACTURED SUPPLIER"`
	SupplierID      *uint  `json:"supplier_id"`
	ManufacturedQty int    `json:"manufactured_qty" validate:"min=0"`
	QtyIncharge     int    `json:"qty_incharge" validate:"min=0"`
	QtySupervisor   int    `json:"qty_supervisor" validate:"min=0"`
	FinalQty        int    `json:"final_qty" validate:"min=0"`
}

// Create membuat satu entry inward. Entry SUPPLIER langsung APPROVED
// dan kreditnya diterapkan saat itu juga. Entry MANUFACTURED mulai
// PENDING tanpa kredit apapun, kecuali pembuatnya supervisor ke atas
// (self-approve, kredit penuh sekali di sini).
func (r *InwardRepository) Create(input InwardInput, user models.CurrentUser) (*models.Inward, error) {
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
		return nil, utils.NewForbidden("You can only create inward entries for products in your plant")
	}

	inward := models.Inward{
		ID:              types.SnowflakeID(idgen.GenerateID()),
		ProductID:       product.ID,
		PlantID:         user.PlantID,
		Source:          input.Source,
		ManufacturedQty: input.ManufacturedQty,
		QtyIncharge:     input.QtyIncharge,
		QtySupervisor:   input.QtySupervisor,
		CreatedByID:     user.ID,
		Date:            time.Now(),
	}

	switch input.Source {
	case models.SourceSupplier:
		if input.SupplierID == nil {
			tx.Rollback()
			return nil, utils.NewBadRequest("Supplier is required for SUPPLIER inward entries")
		}
		var supplier models.Supplier
		if err := tx.First(&supplier, *input.SupplierID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NewNotFound("Supplier not found")
			}
			return nil, err
		}
		if supplier.PlantID != user.PlantID {
			tx.Rollback()
			return nil, utils.NewForbidden("You can only use suppliers from your plant")
		}

		inward.SupplierID = input.SupplierID
		inward.SupplierName = supplier.Name
		inward.SupplierCode = supplier.Code
		// Tidak ada tahap approval untuk supplier, finalQty fix saat create.
		inward.FinalQty = input.FinalQty
		inward.Status = models.InwardApproved

	case models.SourceManufactured:
		if config.CanSelfApprove(user.Role) {
			inward.FinalQty = input.QtySupervisor
			inward.Status = models.InwardApproved
			supervisorID := user.ID
			inward.SupervisorID = &supervisorID
		} else {
			// Kredit menunggu approval, FinalQty tetap 0.
			inward.Status = models.InwardPending
		}

	default:
		tx.Rollback()
		return nil, utils.NewBadRequest("Invalid inward source: %s", input.Source)
	}

	today := models.TruncateDay(inward.Date)

	opening, err := r.stock.PreviousClosing(tx, &product, today)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	inward.OpeningStock = opening
	inward.ClosingStock = opening + inward.FinalQty

	if err := tx.Create(&inward).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Kredit ledger dan cache current stock hanya untuk entry APPROVED.
	if inward.Status == models.InwardApproved && inward.FinalQty != 0 {
		if err := r.stock.CreditInward(tx, &product, today, inward.FinalQty, user.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("current_stock", gorm.Expr("current_stock + ?", inward.FinalQty)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewConflict("Failed to commit inward transaction: %s", err.Error())
	}

	return &inward, nil
}

// CreateBatch memproses beberapa entry sekaligus, berhenti di error pertama.
func (r *InwardRepository) CreateBatch(inputs []InwardInput, user models.CurrentUser) ([]models.Inward, error) {
	results := make([]models.Inward, 0, len(inputs))
	for _, input := range inputs {
		inward, err := r.Create(input, user)
		if err != nil {
			return nil, err
		}
		results = append(results, *inward)
	}
	return results, nil
}

type ApprovalInput struct {
	QtySupervisor int `json:"qty_supervisor" validate:"min=0"`
}

// Approve menjalankan satu-satunya transisi PENDING → APPROVED.
// Kredit yang diterapkan adalah delta terhadap FinalQty sebelumnya,
// bukan kredit penuh kedua; entry pending belum pernah dikredit jadi
// delta = approvedQty.
func (r *InwardRepository) Approve(inwardID types.SnowflakeID, input ApprovalInput, user models.CurrentUser) (*models.Inward, error) {
	if !config.HasRight(user.Role, "approveInwards") {
		return nil, utils.NewForbidden("Only supervisors, managers, and admins can approve inward entries")
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	var inward models.Inward
	if err := lockForUpdate(tx).First(&inward, "id = ?", inwardID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Inward entry not found")
		}
		return nil, err
	}

	if inward.PlantID != user.PlantID {
		tx.Rollback()
		return nil, utils.NewForbidden("You can only approve inward entries in your plant")
	}
	if inward.Status != models.InwardPending {
		tx.Rollback()
		return nil, utils.NewBadRequest("This inward entry has already been processed")
	}
	if inward.Source != models.SourceManufactured {
		tx.Rollback()
		return nil, utils.NewBadRequest("Only manufactured inward entries require approval")
	}

	var product models.Product
	if err := lockForUpdate(tx).First(&product, inward.ProductID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	finalQty := input.QtySupervisor
	qtyChange := finalQty - inward.FinalQty
	supervisorID := user.ID

	inward.QtySupervisor = finalQty
	inward.FinalQty = finalQty
	inward.ClosingStock = inward.OpeningStock + finalQty
	inward.Status = models.InwardApproved
	inward.SupervisorID = &supervisorID

	if err := tx.Save(&inward).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if qtyChange != 0 {
		day := models.TruncateDay(inward.Date)
		if err := r.stock.CreditInward(tx, &product, day, qtyChange, user.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("current_stock", gorm.Expr("current_stock + ?", qtyChange)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewConflict("Failed to commit approval transaction: %s", err.Error())
	}

	return &inward, nil
}

func (r *InwardRepository) GetByID(inwardID types.SnowflakeID, user models.CurrentUser) (*models.Inward, error) {
	var inward models.Inward
	err := r.db.Preload("Product").Preload("CreatedUser").
		First(&inward, "id = ?", inwardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Inward entry not found")
		}
		return nil, err
	}
	if inward.PlantID != user.PlantID {
		return nil, utils.NewForbidden("You can only access inward entries in your plant")
	}
	return &inward, nil
}

// Query mengambil daftar inward plant milik user, paginated.
// SHIFT_INCHARGE hanya melihat entry buatannya sendiri.
func (r *InwardRepository) Query(user models.CurrentUser, status string, page, limit int) ([]models.Inward, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.Model(&models.Inward{}).Where("plant_id = ?", user.PlantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if user.Role == config.RoleShiftIncharge {
		query = query.Where("created_by_id = ?", user.ID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var inwards []models.Inward
	err := query.Preload("Product").Preload("CreatedUser").
		Order("date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&inwards).Error
	return inwards, count, err
}

// PendingList mengambil entry MANUFACTURED yang menunggu approval.
func (r *InwardRepository) PendingList(user models.CurrentUser, page, limit int) ([]models.Inward, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.Model(&models.Inward{}).
		Where("plant_id = ? AND status = ? AND source = ?",
			user.PlantID, models.InwardPending, models.SourceManufactured)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var inwards []models.Inward
	err := query.Preload("Product").Preload("CreatedUser").
		Order("date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&inwards).Error
	return inwards, count, err
}
