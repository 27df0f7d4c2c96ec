package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	FindByCode(ctx context.Context, code string) (*model.Supplier, error)
	List(ctx context.Context, storeCode, status string) ([]model.Supplier, error)

	CreateReceipt(ctx context.Context, receipt *model.PurchaseReceipt) error
	UpdateReceipt(ctx context.Context, receipt *model.PurchaseReceipt) error
	FindReceiptByID(ctx context.Context, id uint) (*model.PurchaseReceipt, error)
	ListReceipts(ctx context.Context, storeCode string, supplierID *uint, page, limit int) ([]model.PurchaseReceipt, int64, error)
	CountReceiptsByPrefix(ctx context.Context, prefix string) (int64, error)
	AddDocument(ctx context.Context, doc *model.PurchaseReceiptDocument) error
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return GetDB(ctx, r.db).Create(supplier).Error
}

func (r *supplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	return GetDB(ctx, r.db).Save(supplier).Error
}

func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Supplier{}).Error
}

func (r *supplierRepository) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := GetDB(ctx, r.db).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) FindByCode(ctx context.Context, code string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := GetDB(ctx, r.db).Where("code = ?", code).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) List(ctx context.Context, storeCode, status string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	db := GetDB(ctx, r.db)
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) CreateReceipt(ctx context.Context, receipt *model.PurchaseReceipt) error {
	return GetDB(ctx, r.db).Create(receipt).Error
}

func (r *supplierRepository) UpdateReceipt(ctx context.Context, receipt *model.PurchaseReceipt) error {
	return GetDB(ctx, r.db).Save(receipt).Error
}

func (r *supplierRepository) FindReceiptByID(ctx context.Context, id uint) (*model.PurchaseReceipt, error) {
	var receipt model.PurchaseReceipt
	err := GetDB(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("row_order asc") }).
		Preload("Items.Product").
		Preload("Documents").
		Preload("Supplier").
		First(&receipt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *supplierRepository) ListReceipts(ctx context.Context, storeCode string, supplierID *uint, page, limit int) ([]model.PurchaseReceipt, int64, error) {
	var receipts []model.PurchaseReceipt
	var total int64

	db := GetDB(ctx, r.db).Model(&model.PurchaseReceipt{})
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if supplierID != nil {
		db = db.Where("supplier_id = ?", *supplierID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("Supplier").Order("created_at desc").Offset(offset).Limit(limit).Find(&receipts).Error; err != nil {
		return nil, 0, err
	}

	return receipts, total, nil
}

func (r *supplierRepository) CountReceiptsByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.PurchaseReceipt{}).Where("receipt_number LIKE ?", prefix+"%").Count(&count).Error
	return count, err
}

func (r *supplierRepository) AddDocument(ctx context.Context, doc *model.PurchaseReceiptDocument) error {
	return GetDB(ctx, r.db).Create(doc).Error
}
