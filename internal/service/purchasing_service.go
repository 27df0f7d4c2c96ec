package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryLine reports goods received against one receipt line.
type DeliveryLine struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// DocumentUpload is uploaded file metadata for a receipt attachment.
type DocumentUpload struct {
	FileName string `json:"file_name" binding:"required"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type PurchasingService interface {
	CreateSupplier(ctx context.Context, in validation.SupplierInput) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, id uint, in validation.SupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
	GetSupplier(ctx context.Context, id uint) (*model.Supplier, error)
	ListSuppliers(ctx context.Context, storeCode, status string) ([]model.Supplier, error)

	CreateReceipt(ctx context.Context, in validation.PurchaseReceiptInput) (*model.PurchaseReceipt, error)
	GetReceipt(ctx context.Context, id uint) (*model.PurchaseReceipt, error)
	ListReceipts(ctx context.Context, storeCode string, supplierID *uint, page, limit int) ([]model.PurchaseReceipt, int64, error)
	ReceiveGoods(ctx context.Context, receiptID uint, deliveries []DeliveryLine, employeeID *uint) (*model.PurchaseReceipt, error)
	MarkPaid(ctx context.Context, receiptID uint) (*model.PurchaseReceipt, error)
	AttachDocument(ctx context.Context, receiptID uint, upload DocumentUpload) (*model.PurchaseReceiptDocument, error)
}

type purchasingService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	invTxRepo    repository.InventoryTxRepository
	txManager    repository.TransactionManager
	uploadDir    string
}

func NewPurchasingService(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	invTxRepo repository.InventoryTxRepository,
	txManager repository.TransactionManager,
	uploadDir string,
) PurchasingService {
	return &purchasingService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		invTxRepo:    invTxRepo,
		txManager:    txManager,
		uploadDir:    uploadDir,
	}
}

func (s *purchasingService) CreateSupplier(ctx context.Context, in validation.SupplierInput) (*model.Supplier, error) {
	supplier, verrs := validation.ValidateSupplier(in)
	if verrs != nil {
		return nil, verrs
	}

	if existing, err := s.supplierRepo.FindByCode(ctx, supplier.Code); err == nil && existing != nil {
		return nil, fmt.Errorf("supplier code %s already in use", supplier.Code)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check supplier code: %w", err)
	}

	if err := s.supplierRepo.Create(ctx, &supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &supplier, nil
}

func (s *purchasingService) UpdateSupplier(ctx context.Context, id uint, in validation.SupplierInput) (*model.Supplier, error) {
	existing, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	normalized, verrs := validation.ValidateSupplier(in)
	if verrs != nil {
		return nil, verrs
	}
	normalized.ID = existing.ID
	normalized.CreatedAt = existing.CreatedAt

	if err := s.supplierRepo.Update(ctx, &normalized); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return &normalized, nil
}

func (s *purchasingService) DeleteSupplier(ctx context.Context, id uint) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("supplier not found: %w", err)
	}
	return s.supplierRepo.Delete(ctx, id)
}

func (s *purchasingService) GetSupplier(ctx context.Context, id uint) (*model.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

func (s *purchasingService) ListSuppliers(ctx context.Context, storeCode, status string) ([]model.Supplier, error) {
	return s.supplierRepo.List(ctx, storeCode, status)
}

func (s *purchasingService) CreateReceipt(ctx context.Context, in validation.PurchaseReceiptInput) (*model.PurchaseReceipt, error) {
	receipt, verrs := validation.ValidatePurchaseReceipt(in)
	if verrs != nil {
		return nil, verrs
	}
	if len(receipt.Items) == 0 {
		return nil, fmt.Errorf("receipt must contain at least one item")
	}

	if _, err := s.supplierRepo.FindByID(ctx, receipt.SupplierID); err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	// Recompute money from the lines; header amounts are advisory.
	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, item := range receipt.Items {
		line := item.UnitPrice.Mul(item.Quantity)
		lineDiscount := item.DiscountAmount
		if lineDiscount.IsZero() && !item.DiscountPercent.IsZero() {
			lineDiscount = line.Mul(item.DiscountPercent).Div(decimal.NewFromInt(100)).Round(2)
		}
		subtotal = subtotal.Add(line)
		discount = discount.Add(lineDiscount)
	}
	receipt.Subtotal = subtotal.Round(2)
	receipt.Discount = discount
	receipt.Total = receipt.Subtotal.Sub(discount).Add(receipt.Tax)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if receipt.ReceiptNumber == "" {
			number, genErr := s.generateReceiptNumber(txCtx)
			if genErr != nil {
				return fmt.Errorf("failed to generate receipt number: %w", genErr)
			}
			receipt.ReceiptNumber = number
		}
		return s.supplierRepo.CreateReceipt(txCtx, &receipt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	return s.supplierRepo.FindReceiptByID(ctx, receipt.ID)
}

func (s *purchasingService) GetReceipt(ctx context.Context, id uint) (*model.PurchaseReceipt, error) {
	return s.supplierRepo.FindReceiptByID(ctx, id)
}

func (s *purchasingService) ListReceipts(ctx context.Context, storeCode string, supplierID *uint, page, limit int) ([]model.PurchaseReceipt, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.supplierRepo.ListReceipts(ctx, storeCode, supplierID, page, limit)
}

// ReceiveGoods books a (possibly partial) delivery: bumps each line's
// received quantity, adds whole units to stock with an audit row.
func (s *purchasingService) ReceiveGoods(ctx context.Context, receiptID uint, deliveries []DeliveryLine, employeeID *uint) (*model.PurchaseReceipt, error) {
	if len(deliveries) == 0 {
		return nil, fmt.Errorf("no delivery lines")
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		receipt, err := s.supplierRepo.FindReceiptByID(txCtx, receiptID)
		if err != nil {
			return fmt.Errorf("receipt not found: %w", err)
		}

		lines := make(map[uint]*model.PurchaseReceiptItem, len(receipt.Items))
		for i := range receipt.Items {
			lines[receipt.Items[i].ID] = &receipt.Items[i]
		}

		for _, delivery := range deliveries {
			item, ok := lines[delivery.ItemID]
			if !ok {
				return fmt.Errorf("line %d does not belong to receipt %s", delivery.ItemID, receipt.ReceiptNumber)
			}

			qty, qtyErr := decimal.NewFromString(delivery.Quantity)
			if qtyErr != nil {
				return validation.Errors{{
					Field:   "quantity",
					Code:    validation.CodeMalformed,
					Message: fmt.Sprintf("cannot parse quantity %q", delivery.Quantity),
				}}
			}
			if !qty.IsPositive() {
				return validation.Errors{{
					Field:   "quantity",
					Code:    validation.CodeOutOfRange,
					Message: "quantity must be positive",
				}}
			}
			qty = qty.Truncate(4)

			newReceived := item.ReceivedQuantity.Add(qty)
			if newReceived.GreaterThan(item.Quantity) {
				return fmt.Errorf("line %d over-delivered: ordered %s, received %s",
					item.ID, item.Quantity.String(), newReceived.String())
			}
			item.ReceivedQuantity = newReceived

			product, lockErr := s.productRepo.FindByIDForUpdate(txCtx, item.ProductID)
			if lockErr != nil {
				return fmt.Errorf("product %d not found: %w", item.ProductID, lockErr)
			}
			if !product.TrackStock {
				continue
			}

			units := int(qty.Floor().IntPart())
			if units == 0 {
				continue
			}
			audit, verrs := validation.ValidateInventoryTransaction(validation.InventoryTransactionInput{
				ProductID:     product.ID,
				Type:          model.InventoryAdd,
				Quantity:      units,
				PreviousStock: product.Stock,
				NewStock:      product.Stock + units,
				Reference:     receipt.ReceiptNumber,
				EmployeeID:    employeeID,
				StoreCode:     receipt.StoreCode,
			})
			if verrs != nil {
				return verrs
			}
			if updErr := s.productRepo.UpdateStock(txCtx, product.ID, product.Stock+units); updErr != nil {
				return fmt.Errorf("failed to update stock: %w", updErr)
			}
			if auditErr := s.invTxRepo.Create(txCtx, &audit); auditErr != nil {
				return fmt.Errorf("failed to write stock audit: %w", auditErr)
			}
		}

		return s.supplierRepo.UpdateReceipt(txCtx, receipt)
	})
	if err != nil {
		return nil, err
	}

	return s.supplierRepo.FindReceiptByID(ctx, receiptID)
}

func (s *purchasingService) MarkPaid(ctx context.Context, receiptID uint) (*model.PurchaseReceipt, error) {
	receipt, err := s.supplierRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("receipt not found: %w", err)
	}
	if receipt.IsPaid {
		return receipt, nil
	}
	receipt.IsPaid = true
	if err := s.supplierRepo.UpdateReceipt(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to mark receipt paid: %w", err)
	}
	return receipt, nil
}

// AttachDocument stores file metadata under a collision-free name; the
// caller is responsible for writing the bytes to the returned path.
func (s *purchasingService) AttachDocument(ctx context.Context, receiptID uint, upload DocumentUpload) (*model.PurchaseReceiptDocument, error) {
	receipt, err := s.supplierRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("receipt not found: %w", err)
	}

	storedName := uuid.NewString() + filepath.Ext(upload.FileName)
	doc := model.PurchaseReceiptDocument{
		ReceiptID: receipt.ID,
		FileName:  upload.FileName,
		FileType:  upload.FileType,
		FileSize:  upload.FileSize,
		FilePath:  filepath.Join(s.uploadDir, "receipts", storedName),
	}
	if err := s.supplierRepo.AddDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("failed to attach document: %w", err)
	}
	return &doc, nil
}

func (s *purchasingService) generateReceiptNumber(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "PR-" + today + "-"

	count, err := s.supplierRepo.CountReceiptsByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}
