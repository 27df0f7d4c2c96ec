package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(ctx context.Context, table *model.DiningTable) error
	Update(ctx context.Context, table *model.DiningTable) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.DiningTable, error)
	List(ctx context.Context, storeCode, status string) ([]model.DiningTable, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *model.DiningTable) error {
	return GetDB(ctx, r.db).Create(table).Error
}

func (r *tableRepository) Update(ctx context.Context, table *model.DiningTable) error {
	return GetDB(ctx, r.db).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.DiningTable{}).Error
}

func (r *tableRepository) FindByID(ctx context.Context, id uint) (*model.DiningTable, error) {
	var table model.DiningTable
	if err := GetDB(ctx, r.db).First(&table, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) List(ctx context.Context, storeCode, status string) ([]model.DiningTable, error) {
	var tables []model.DiningTable
	db := GetDB(ctx, r.db)
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("floor asc, zone asc, number asc").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return GetDB(ctx, r.db).Model(&model.DiningTable{}).Where("id = ?", id).Update("status", status).Error
}
