package service

import (
	"context"
	"fmt"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"
)

// IssueInvoiceRequest creates a tax invoice from a settled order.
type IssueInvoiceRequest struct {
	OrderID         uint   `json:"order_id" binding:"required"`
	CustomerName    string `json:"customer_name"`
	CustomerTaxCode string `json:"customer_tax_code"`
	BuyerAddress    string `json:"buyer_address"`
}

// EInvoiceStatusRequest advances the provider lifecycle of an invoice.
type EInvoiceStatusRequest struct {
	Status int    `json:"status"`
	Code   string `json:"code"` // provider lookup code, set once issued
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, in validation.InvoiceInput) (*model.Invoice, error)
	IssueFromOrder(ctx context.Context, req IssueInvoiceRequest) (*model.Invoice, error)
	GetInvoice(ctx context.Context, id uint) (*model.Invoice, error)
	ListInvoices(ctx context.Context, storeCode string, status *int, number string, page, limit int) ([]model.Invoice, int64, error)
	UpdateEInvoiceStatus(ctx context.Context, id uint, req EInvoiceStatusRequest) (*model.Invoice, error)

	GetConnection(ctx context.Context, storeCode string) (*model.EInvoiceConnection, error)
	SaveConnection(ctx context.Context, conn *model.EInvoiceConnection) error
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	txManager   repository.TransactionManager
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, orderRepo: orderRepo, txManager: txManager}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, in validation.InvoiceInput) (*model.Invoice, error) {
	invoice, verrs := validation.ValidateInvoice(in)
	if verrs != nil {
		return nil, verrs
	}
	if len(invoice.Items) == 0 {
		return nil, fmt.Errorf("invoice must contain at least one item")
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if invoice.InvoiceNumber == "" {
			number, genErr := s.generateInvoiceNumber(txCtx)
			if genErr != nil {
				return fmt.Errorf("failed to generate invoice number: %w", genErr)
			}
			invoice.InvoiceNumber = number
		}
		return s.invoiceRepo.Create(txCtx, &invoice)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

// IssueFromOrder snapshots a paid order's lines into a draft invoice.
func (s *invoiceService) IssueFromOrder(ctx context.Context, req IssueInvoiceRequest) (*model.Invoice, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.Status != model.OrderStatusPaid {
		return nil, fmt.Errorf("order %s is not paid", order.OrderNumber)
	}

	in := validation.InvoiceInput{
		OrderID:         &order.ID,
		CustomerName:    req.CustomerName,
		CustomerTaxCode: req.CustomerTaxCode,
		BuyerAddress:    req.BuyerAddress,
		Subtotal:        order.Subtotal.String(),
		Tax:             order.Tax.String(),
		Total:           order.Total.String(),
		EInvoiceStatus:  model.EInvoiceStatusDraft,
		StoreCode:       order.StoreCode,
	}
	for _, item := range order.Items {
		name := ""
		unit := ""
		var taxRate any
		if item.Product != nil {
			name = item.Product.Name
			unit = item.Product.Unit
			if item.Product.TaxRateLabel != "" {
				taxRate = item.Product.TaxRateLabel
			} else {
				taxRate = item.Product.TaxRate
			}
		}
		productID := item.ProductID
		in.Items = append(in.Items, validation.InvoiceItemInput{
			ProductID: &productID,
			Name:      name,
			Unit:      unit,
			Quantity:  item.Quantity.String(),
			UnitPrice: item.UnitPrice.String(),
			TaxRate:   taxRate,
			Total:     item.UnitPrice.Mul(item.Quantity).Sub(item.Discount).String(),
		})
	}

	invoice, createErr := s.CreateInvoice(ctx, in)
	if createErr != nil {
		return nil, createErr
	}

	order.EInvoiceStatus = model.EInvoiceStatusDraft
	if updErr := s.orderRepo.Update(ctx, order); updErr != nil {
		return nil, fmt.Errorf("failed to flag order e-invoice status: %w", updErr)
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uint) (*model.Invoice, error) {
	return s.invoiceRepo.FindByID(ctx, id)
}

func (s *invoiceService) ListInvoices(ctx context.Context, storeCode string, status *int, number string, page, limit int) ([]model.Invoice, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.invoiceRepo.List(ctx, repository.InvoiceListFilter{
		StoreCode:      storeCode,
		EInvoiceStatus: status,
		InvoiceNumber:  number,
		Page:           page,
		Limit:          limit,
	})
}

func (s *invoiceService) UpdateEInvoiceStatus(ctx context.Context, id uint, req EInvoiceStatusRequest) (*model.Invoice, error) {
	if !model.ValidEInvoiceStatus(req.Status) {
		return nil, validation.Errors{{
			Field:   "status",
			Code:    validation.CodeOutOfRange,
			Message: "eInvoiceStatus must be between 0 and 10",
		}}
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}
	if invoice.EInvoiceStatus == model.EInvoiceStatusCancelled {
		return nil, fmt.Errorf("invoice %s is cancelled", invoice.InvoiceNumber)
	}

	// The order mirror must move with the invoice or not at all.
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if updErr := s.invoiceRepo.UpdateEInvoiceStatus(txCtx, id, req.Status, req.Code); updErr != nil {
			return fmt.Errorf("failed to update e-invoice status: %w", updErr)
		}
		if invoice.OrderID == nil {
			return nil
		}
		order, findErr := s.orderRepo.FindByID(txCtx, *invoice.OrderID)
		if findErr != nil {
			return fmt.Errorf("linked order not found: %w", findErr)
		}
		order.EInvoiceStatus = req.Status
		if updErr := s.orderRepo.Update(txCtx, order); updErr != nil {
			return fmt.Errorf("failed to mirror e-invoice status to order: %w", updErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.FindByID(ctx, id)
}

func (s *invoiceService) GetConnection(ctx context.Context, storeCode string) (*model.EInvoiceConnection, error) {
	return s.invoiceRepo.FindConnection(ctx, storeCode)
}

func (s *invoiceService) SaveConnection(ctx context.Context, conn *model.EInvoiceConnection) error {
	if conn.Provider == "" || conn.BaseURL == "" {
		return fmt.Errorf("provider and base url are required")
	}
	return s.invoiceRepo.SaveConnection(ctx, conn)
}

func (s *invoiceService) generateInvoiceNumber(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "INV-" + today + "-"

	count, err := s.invoiceRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}
