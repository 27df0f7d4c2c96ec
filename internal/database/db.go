package database

import (
	"log"

	"pos-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.DiningTable{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderChangeHistory{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.Employee{},
		&model.AttendanceRecord{},
		&model.Customer{},
		&model.PointTransaction{},
		&model.Supplier{},
		&model.PurchaseReceipt{},
		&model.PurchaseReceiptItem{},
		&model.PurchaseReceiptDocument{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.EInvoiceConnection{},
		&model.PriceList{},
		&model.PriceListItem{},
		&model.InventoryTransaction{},
		&model.StoreSettings{},
		&model.PrinterConfig{},
		&model.InvoiceTemplate{},
		&model.PaymentMethod{},
		&model.GeneralSetting{},
		&model.SysUser{},
		&model.RefreshToken{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
