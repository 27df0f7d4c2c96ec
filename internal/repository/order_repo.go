package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	StoreCode     string
	Status        string
	PaymentStatus string
	SalesChannel  string
	TableID       *uint
	Page          int
	Limit         int
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindByIDWithItems(ctx context.Context, id uint) (*model.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	List(ctx context.Context, filter OrderListFilter) ([]model.Order, int64, error)
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
	AppendHistory(ctx context.Context, entry *model.OrderChangeHistory) error
	ListHistory(ctx context.Context, orderID uint) ([]model.OrderChangeHistory, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return GetDB(ctx, r.db).Create(order).Error
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return GetDB(ctx, r.db).Save(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDWithItems(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := GetDB(ctx, r.db).
		Preload("Items").
		Preload("Items.Product").
		Preload("Table").
		Preload("Employee").
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderListFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Order{})
	if filter.StoreCode != "" {
		db = db.Where("store_code = ?", filter.StoreCode)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		db = db.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.SalesChannel != "" {
		db = db.Where("sales_channel = ?", filter.SalesChannel)
	}
	if filter.TableID != nil {
		db = db.Where("table_id = ?", *filter.TableID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Preload("Items").Preload("Table").
		Order("created_at desc").Offset(offset).Limit(filter.Limit).Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Order{}).Where("order_number LIKE ?", prefix+"%").Count(&count).Error
	return count, err
}

func (r *orderRepository) AppendHistory(ctx context.Context, entry *model.OrderChangeHistory) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *orderRepository) ListHistory(ctx context.Context, orderID uint) ([]model.OrderChangeHistory, error) {
	var history []model.OrderChangeHistory
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("created_at asc").Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
