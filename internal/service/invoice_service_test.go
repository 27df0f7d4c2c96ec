package service

import (
	"context"
	"errors"
	"testing"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
)

// passthroughTxManager runs the closure directly so service transaction
// logic can be exercised without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type stubInvoiceRepo struct {
	repository.InvoiceRepository
	invoice       model.Invoice
	statusUpdates int
}

func (r *stubInvoiceRepo) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	inv := r.invoice
	return &inv, nil
}

func (r *stubInvoiceRepo) UpdateEInvoiceStatus(ctx context.Context, id uint, status int, code string) error {
	r.statusUpdates++
	r.invoice.EInvoiceStatus = status
	r.invoice.EInvoiceCode = code
	return nil
}

type stubOrderRepo struct {
	repository.OrderRepository
	order     model.Order
	updateErr error
	updated   *model.Order
}

func (r *stubOrderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	o := r.order
	return &o, nil
}

func (r *stubOrderRepo) Update(ctx context.Context, order *model.Order) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = order
	return nil
}

func TestUpdateEInvoiceStatus_MirrorsOrder(t *testing.T) {
	orderID := uint(12)
	invoiceRepo := &stubInvoiceRepo{invoice: model.Invoice{
		ID:             3,
		InvoiceNumber:  "INV-20260828-00001",
		OrderID:        &orderID,
		EInvoiceStatus: model.EInvoiceStatusDraft,
	}}
	orderRepo := &stubOrderRepo{order: model.Order{ID: orderID, EInvoiceStatus: model.EInvoiceStatusDraft}}
	svc := NewInvoiceService(invoiceRepo, orderRepo, passthroughTxManager{})

	_, err := svc.UpdateEInvoiceStatus(context.Background(), 3, EInvoiceStatusRequest{Status: model.EInvoiceStatusIssued, Code: "EC-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invoiceRepo.statusUpdates != 1 {
		t.Errorf("expected one invoice status write, got %d", invoiceRepo.statusUpdates)
	}
	if orderRepo.updated == nil || orderRepo.updated.EInvoiceStatus != model.EInvoiceStatusIssued {
		t.Errorf("order status not mirrored: %+v", orderRepo.updated)
	}
}

func TestUpdateEInvoiceStatus_MirrorFailurePropagates(t *testing.T) {
	orderID := uint(12)
	invoiceRepo := &stubInvoiceRepo{invoice: model.Invoice{
		ID:             3,
		OrderID:        &orderID,
		EInvoiceStatus: model.EInvoiceStatusDraft,
	}}
	orderRepo := &stubOrderRepo{
		order:     model.Order{ID: orderID},
		updateErr: errors.New("write refused"),
	}
	svc := NewInvoiceService(invoiceRepo, orderRepo, passthroughTxManager{})

	_, err := svc.UpdateEInvoiceStatus(context.Background(), 3, EInvoiceStatusRequest{Status: model.EInvoiceStatusIssued})
	if err == nil {
		t.Fatal("expected the failed order mirror to fail the update")
	}
}

func TestUpdateEInvoiceStatus_CancelledIsFinal(t *testing.T) {
	invoiceRepo := &stubInvoiceRepo{invoice: model.Invoice{
		ID:             3,
		InvoiceNumber:  "INV-20260828-00002",
		EInvoiceStatus: model.EInvoiceStatusCancelled,
	}}
	svc := NewInvoiceService(invoiceRepo, &stubOrderRepo{}, passthroughTxManager{})

	_, err := svc.UpdateEInvoiceStatus(context.Background(), 3, EInvoiceStatusRequest{Status: model.EInvoiceStatusDraft})
	if err == nil {
		t.Fatal("expected cancelled invoice to reject further updates")
	}
	if invoiceRepo.statusUpdates != 0 {
		t.Errorf("cancelled invoice was written, %d updates", invoiceRepo.statusUpdates)
	}
}
