package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

// InvoiceListFilter narrows invoice listings.
type InvoiceListFilter struct {
	StoreCode      string
	EInvoiceStatus *int
	InvoiceNumber  string
	Page           int
	Limit          int
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	Update(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	List(ctx context.Context, filter InvoiceListFilter) ([]model.Invoice, int64, error)
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
	UpdateEInvoiceStatus(ctx context.Context, id uint, status int, code string) error

	FindConnection(ctx context.Context, storeCode string) (*model.EInvoiceConnection, error)
	SaveConnection(ctx context.Context, conn *model.EInvoiceConnection) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Save(invoice).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).Preload("Items").First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter InvoiceListFilter) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Invoice{})
	if filter.StoreCode != "" {
		db = db.Where("store_code = ?", filter.StoreCode)
	}
	if filter.EInvoiceStatus != nil {
		db = db.Where("e_invoice_status = ?", *filter.EInvoiceStatus)
	}
	if filter.InvoiceNumber != "" {
		db = db.Where("invoice_number LIKE ?", "%"+filter.InvoiceNumber+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Preload("Items").Order("created_at desc").Offset(offset).Limit(filter.Limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).Where("invoice_number LIKE ?", prefix+"%").Count(&count).Error
	return count, err
}

func (r *invoiceRepository) UpdateEInvoiceStatus(ctx context.Context, id uint, status int, code string) error {
	updates := map[string]interface{}{"e_invoice_status": status}
	if code != "" {
		updates["e_invoice_code"] = code
	}
	return GetDB(ctx, r.db).Model(&model.Invoice{}).Where("id = ?", id).Updates(updates).Error
}

func (r *invoiceRepository) FindConnection(ctx context.Context, storeCode string) (*model.EInvoiceConnection, error) {
	var conn model.EInvoiceConnection
	if err := GetDB(ctx, r.db).Where("store_code = ? AND is_active = ?", storeCode, true).First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *invoiceRepository) SaveConnection(ctx context.Context, conn *model.EInvoiceConnection) error {
	return GetDB(ctx, r.db).Save(conn).Error
}
