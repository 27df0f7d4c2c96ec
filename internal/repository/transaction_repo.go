package repository

import (
	"context"
	"time"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

// TransactionListFilter narrows completed-sale listings.
type TransactionListFilter struct {
	StoreCode     string
	PaymentMethod string
	From          *time.Time
	To            *time.Time
	Page          int
	Limit         int
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error)
	List(ctx context.Context, filter TransactionListFilter) ([]model.Transaction, int64, error)
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	return GetDB(ctx, r.db).Create(tx).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var tx model.Transaction
	if err := GetDB(ctx, r.db).Preload("Items").First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error) {
	var tx model.Transaction
	if err := GetDB(ctx, r.db).Preload("Items").Where("transaction_id = ?", transactionID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) List(ctx context.Context, filter TransactionListFilter) ([]model.Transaction, int64, error) {
	var txs []model.Transaction
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Transaction{})
	if filter.StoreCode != "" {
		db = db.Where("store_code = ?", filter.StoreCode)
	}
	if filter.PaymentMethod != "" {
		db = db.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.From != nil {
		db = db.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("created_at < ?", *filter.To)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Preload("Items").Order("created_at desc").Offset(offset).Limit(filter.Limit).Find(&txs).Error; err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}

func (r *transactionRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Transaction{}).Where("transaction_id LIKE ?", prefix+"%").Count(&count).Error
	return count, err
}
