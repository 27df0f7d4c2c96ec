package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdjustStockRequest is a manual stock correction. Quantity is always
// positive; Type decides the direction.
type AdjustStockRequest struct {
	Type       string `json:"type" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Note       string `json:"note"`
	Reference  string `json:"reference"`
	EmployeeID *uint  `json:"employee_id"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, in validation.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, in validation.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, storeCode string, page, limit int, search string) ([]model.Product, int64, error)
	AdjustStock(ctx context.Context, id uint, req AdjustStockRequest) (*model.Product, error)
	ListStockHistory(ctx context.Context, id uint, page, limit int) ([]model.InventoryTransaction, int64, error)
	EffectivePrice(ctx context.Context, id uint, storeCode string, at time.Time) (decimal.Decimal, error)
}

type productService struct {
	productRepo   repository.ProductRepository
	priceListRepo repository.PriceListRepository
	invTxRepo     repository.InventoryTxRepository
	txManager     repository.TransactionManager
}

func NewProductService(
	productRepo repository.ProductRepository,
	priceListRepo repository.PriceListRepository,
	invTxRepo repository.InventoryTxRepository,
	txManager repository.TransactionManager,
) ProductService {
	return &productService{
		productRepo:   productRepo,
		priceListRepo: priceListRepo,
		invTxRepo:     invTxRepo,
		txManager:     txManager,
	}
}

func (s *productService) CreateProduct(ctx context.Context, in validation.ProductInput) (*model.Product, error) {
	product, verrs := validation.ValidateProduct(in)
	if verrs != nil {
		return nil, verrs
	}

	if existing, err := s.productRepo.FindBySKU(ctx, product.SKU); err == nil && existing != nil {
		return nil, fmt.Errorf("sku %s already in use", product.SKU)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}

	if err := s.productRepo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, in validation.ProductInput) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	normalized, verrs := validation.ValidateProduct(in)
	if verrs != nil {
		return nil, verrs
	}

	if normalized.SKU != existing.SKU {
		if other, skuErr := s.productRepo.FindBySKU(ctx, normalized.SKU); skuErr == nil && other.ID != id {
			return nil, fmt.Errorf("sku %s already in use", normalized.SKU)
		} else if skuErr != nil && !errors.Is(skuErr, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check sku: %w", skuErr)
		}
	}

	normalized.ID = existing.ID
	normalized.CreatedAt = existing.CreatedAt
	// Stock moves only through AdjustStock and checkout.
	normalized.Stock = existing.Stock

	if err := s.productRepo.Update(ctx, &normalized); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &normalized, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("product not found: %w", err)
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, storeCode string, page, limit int, search string) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.productRepo.List(ctx, storeCode, page, limit, search)
}

// AdjustStock applies a manual correction under a row lock and writes
// the audit row in the same transaction.
func (s *productService) AdjustStock(ctx context.Context, id uint, req AdjustStockRequest) (*model.Product, error) {
	var updated *model.Product

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		product, err := s.productRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("product not found: %w", err)
		}

		var delta, newStock int
		switch req.Type {
		case model.InventoryAdd, model.InventoryReturn:
			delta = req.Quantity
			newStock = product.Stock + delta
		case model.InventorySubtract:
			delta = -req.Quantity
			newStock = product.Stock + delta
		case model.InventorySet:
			delta = req.Quantity
			newStock = req.Quantity
		default:
			return validation.Errors{{
				Field:   "type",
				Code:    validation.CodeInvalidEnum,
				Message: fmt.Sprintf("invalid inventory transaction type %q", req.Type),
			}}
		}

		audit, verrs := validation.ValidateInventoryTransaction(validation.InventoryTransactionInput{
			ProductID:     product.ID,
			Type:          req.Type,
			Quantity:      delta,
			PreviousStock: product.Stock,
			NewStock:      newStock,
			Reference:     req.Reference,
			Note:          req.Note,
			EmployeeID:    req.EmployeeID,
			StoreCode:     product.StoreCode,
		})
		if verrs != nil {
			return verrs
		}

		if err := s.productRepo.UpdateStock(txCtx, product.ID, newStock); err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		if err := s.invTxRepo.Create(txCtx, &audit); err != nil {
			return fmt.Errorf("failed to write stock audit: %w", err)
		}

		product.Stock = newStock
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *productService) ListStockHistory(ctx context.Context, id uint, page, limit int) ([]model.InventoryTransaction, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.invTxRepo.ListByProduct(ctx, id, page, limit)
}

// EffectivePrice resolves the selling price at a point in time: the
// store's default price list override wins when the list is active,
// otherwise the catalog price applies.
func (s *productService) EffectivePrice(ctx context.Context, id uint, storeCode string, at time.Time) (decimal.Decimal, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("product not found: %w", err)
	}

	list, err := s.priceListRepo.FindDefaultForStore(ctx, storeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Price, nil
		}
		return decimal.Zero, fmt.Errorf("failed to resolve price list: %w", err)
	}
	if !list.ActiveAt(at) {
		return product.Price, nil
	}

	for _, item := range list.Items {
		if item.ProductID == id {
			return item.Price, nil
		}
	}
	return product.Price, nil
}
