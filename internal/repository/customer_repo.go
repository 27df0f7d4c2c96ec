package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Customer, error)
	FindByCustomerID(ctx context.Context, customerID string) (*model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	List(ctx context.Context, storeCode string, page, limit int, search string) ([]model.Customer, int64, error)
	CreatePointTransaction(ctx context.Context, pt *model.PointTransaction) error
	ListPointTransactions(ctx context.Context, customerID uint) ([]model.PointTransaction, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return GetDB(ctx, r.db).Create(customer).Error
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return GetDB(ctx, r.db).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Customer{}).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByIDForUpdate locks the customer row; point movements read and
// write the balance inside one transaction.
func (r *customerRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByCustomerID(ctx context.Context, customerID string) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).Where("phone = ?", phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, storeCode string, page, limit int, search string) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Customer{})
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if search != "" {
		db = db.Where("name ILIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r *customerRepository) CreatePointTransaction(ctx context.Context, pt *model.PointTransaction) error {
	return GetDB(ctx, r.db).Create(pt).Error
}

func (r *customerRepository) ListPointTransactions(ctx context.Context, customerID uint) ([]model.PointTransaction, error) {
	var pts []model.PointTransaction
	if err := GetDB(ctx, r.db).Where("customer_ref = ?", customerID).Order("created_at desc").Find(&pts).Error; err != nil {
		return nil, err
	}
	return pts, nil
}
