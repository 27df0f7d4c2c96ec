package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

type PriceListRepository interface {
	Create(ctx context.Context, list *model.PriceList) error
	Update(ctx context.Context, list *model.PriceList) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.PriceList, error)
	FindDefaultForStore(ctx context.Context, storeCode string) (*model.PriceList, error)
	List(ctx context.Context, storeCode string) ([]model.PriceList, error)
	FindItem(ctx context.Context, listID, productID uint) (*model.PriceListItem, error)
	SaveItem(ctx context.Context, item *model.PriceListItem) error
	DeleteItem(ctx context.Context, id uint) error
}

type priceListRepository struct {
	db *gorm.DB
}

func NewPriceListRepository(db *gorm.DB) PriceListRepository {
	return &priceListRepository{db: db}
}

func (r *priceListRepository) Create(ctx context.Context, list *model.PriceList) error {
	return GetDB(ctx, r.db).Create(list).Error
}

func (r *priceListRepository) Update(ctx context.Context, list *model.PriceList) error {
	return GetDB(ctx, r.db).Save(list).Error
}

// Delete removes the list; overrides go with it via cascade.
func (r *priceListRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PriceList{}).Error
}

func (r *priceListRepository) FindByID(ctx context.Context, id uint) (*model.PriceList, error) {
	var list model.PriceList
	if err := GetDB(ctx, r.db).Preload("Items").Preload("Items.Product").First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *priceListRepository) FindDefaultForStore(ctx context.Context, storeCode string) (*model.PriceList, error) {
	var list model.PriceList
	err := GetDB(ctx, r.db).Preload("Items").
		Where("store_code = ? AND is_default = ?", storeCode, true).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *priceListRepository) List(ctx context.Context, storeCode string) ([]model.PriceList, error) {
	var lists []model.PriceList
	db := GetDB(ctx, r.db)
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if err := db.Order("created_at desc").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *priceListRepository) FindItem(ctx context.Context, listID, productID uint) (*model.PriceListItem, error) {
	var item model.PriceListItem
	err := GetDB(ctx, r.db).Where("price_list_id = ? AND product_id = ?", listID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *priceListRepository) SaveItem(ctx context.Context, item *model.PriceListItem) error {
	return GetDB(ctx, r.db).Save(item).Error
}

func (r *priceListRepository) DeleteItem(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PriceListItem{}).Error
}
