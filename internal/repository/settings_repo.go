package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	FindStore(ctx context.Context, storeCode string) (*model.StoreSettings, error)
	SaveStore(ctx context.Context, settings *model.StoreSettings) error

	ListPrinters(ctx context.Context, storeCode string) ([]model.PrinterConfig, error)
	SavePrinter(ctx context.Context, printer *model.PrinterConfig) error
	DeletePrinter(ctx context.Context, id uint) error

	ListPaymentMethods(ctx context.Context, storeCode string) ([]model.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, method *model.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id uint) error

	ListTemplates(ctx context.Context, storeCode string) ([]model.InvoiceTemplate, error)
	SaveTemplate(ctx context.Context, template *model.InvoiceTemplate) error

	GetSetting(ctx context.Context, storeCode, key string) (*model.GeneralSetting, error)
	SetSetting(ctx context.Context, setting *model.GeneralSetting) error
	ListSettings(ctx context.Context, storeCode string) ([]model.GeneralSetting, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) FindStore(ctx context.Context, storeCode string) (*model.StoreSettings, error) {
	var settings model.StoreSettings
	if err := GetDB(ctx, r.db).Where("store_code = ?", storeCode).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SaveStore(ctx context.Context, settings *model.StoreSettings) error {
	return GetDB(ctx, r.db).Save(settings).Error
}

func (r *settingsRepository) ListPrinters(ctx context.Context, storeCode string) ([]model.PrinterConfig, error) {
	var printers []model.PrinterConfig
	if err := GetDB(ctx, r.db).Where("store_code = ?", storeCode).Order("name asc").Find(&printers).Error; err != nil {
		return nil, err
	}
	return printers, nil
}

func (r *settingsRepository) SavePrinter(ctx context.Context, printer *model.PrinterConfig) error {
	return GetDB(ctx, r.db).Save(printer).Error
}

func (r *settingsRepository) DeletePrinter(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PrinterConfig{}).Error
}

func (r *settingsRepository) ListPaymentMethods(ctx context.Context, storeCode string) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	if err := GetDB(ctx, r.db).Where("store_code = ?", storeCode).Order("sort_order asc").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *settingsRepository) SavePaymentMethod(ctx context.Context, method *model.PaymentMethod) error {
	return GetDB(ctx, r.db).Save(method).Error
}

func (r *settingsRepository) DeletePaymentMethod(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PaymentMethod{}).Error
}

func (r *settingsRepository) ListTemplates(ctx context.Context, storeCode string) ([]model.InvoiceTemplate, error) {
	var templates []model.InvoiceTemplate
	if err := GetDB(ctx, r.db).Where("store_code = ?", storeCode).Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *settingsRepository) SaveTemplate(ctx context.Context, template *model.InvoiceTemplate) error {
	return GetDB(ctx, r.db).Save(template).Error
}

func (r *settingsRepository) GetSetting(ctx context.Context, storeCode, key string) (*model.GeneralSetting, error) {
	var setting model.GeneralSetting
	if err := GetDB(ctx, r.db).Where("store_code = ? AND key = ?", storeCode, key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting upserts on the (store_code, key) unique index.
func (r *settingsRepository) SetSetting(ctx context.Context, setting *model.GeneralSetting) error {
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_code"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

func (r *settingsRepository) ListSettings(ctx context.Context, storeCode string) ([]model.GeneralSetting, error) {
	var settings []model.GeneralSetting
	if err := GetDB(ctx, r.db).Where("store_code = ?", storeCode).Order("key asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
