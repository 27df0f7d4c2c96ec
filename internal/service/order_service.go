package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"
	"pos-backend/internal/websocket"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// OrderFilter narrows ListOrders.
type OrderFilter struct {
	StoreCode     string
	Status        string
	PaymentStatus string
	SalesChannel  string
	TableID       *uint
	Page          int
	Limit         int
}

// UpdateOrderStatusRequest carries a status transition plus audit context.
type UpdateOrderStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	Actor     string `json:"actor"`
	IPAddress string `json:"-"`
}

// CheckoutRequest settles an order into a transaction.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	CashierName   string `json:"cashier_name"`
	Actor         string `json:"actor"`
	IPAddress     string `json:"-"`
}

// orderEvent is the payload broadcast to kitchen displays.
type orderEvent struct {
	Event       string `json:"event"`
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	StoreCode   string `json:"store_code"`
}

// --- Interface ---

type OrderService interface {
	CreateOrder(ctx context.Context, in validation.OrderInput, actor, ip string) (*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateOrderStatusRequest) (*model.Order, error)
	Checkout(ctx context.Context, id uint, req CheckoutRequest) (*model.Transaction, error)
	GetHistory(ctx context.Context, id uint) ([]model.OrderChangeHistory, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	tableRepo    repository.TableRepository
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	invTxRepo    repository.InventoryTxRepository
	txManager    repository.TransactionManager
	hub          *websocket.Hub
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	tableRepo repository.TableRepository,
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	invTxRepo repository.InventoryTxRepository,
	txManager repository.TransactionManager,
	hub *websocket.Hub,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		tableRepo:    tableRepo,
		customerRepo: customerRepo,
		txRepo:       txRepo,
		invTxRepo:    invTxRepo,
		txManager:    txManager,
		hub:          hub,
	}
}

// validTransitions maps each order status to the statuses it may move to.
// Paid and cancelled are terminal.
var validTransitions = map[string][]string{
	model.OrderStatusPending:   {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed: {model.OrderStatusPreparing, model.OrderStatusCancelled},
	model.OrderStatusPreparing: {model.OrderStatusReady, model.OrderStatusCancelled},
	model.OrderStatusReady:     {model.OrderStatusServed, model.OrderStatusCancelled},
	model.OrderStatusServed:    {model.OrderStatusPaid, model.OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// --- Implementation ---

func (s *orderService) CreateOrder(ctx context.Context, in validation.OrderInput, actor, ip string) (*model.Order, error) {
	order, verrs := validation.ValidateOrder(in)
	if verrs != nil {
		return nil, verrs
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	// Derive totals from items; client-supplied totals are advisory only.
	subtotal := decimal.Zero
	tax := decimal.Zero
	discount := decimal.Zero
	for i := range order.Items {
		item := &order.Items[i]
		line := item.UnitPrice.Mul(item.Quantity)
		subtotal = subtotal.Add(line)
		tax = tax.Add(item.Tax)
		discount = discount.Add(item.Discount)
	}
	order.Subtotal = subtotal
	order.Tax = tax
	order.Discount = discount
	order.Total = subtotal.Add(tax).Sub(discount)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if order.OrderNumber == "" {
			number, genErr := s.generateOrderNumber(txCtx)
			if genErr != nil {
				return fmt.Errorf("failed to generate order number: %w", genErr)
			}
			order.OrderNumber = number
		}

		if createErr := s.orderRepo.Create(txCtx, &order); createErr != nil {
			return fmt.Errorf("failed to create order: %w", createErr)
		}

		if order.TableID != nil {
			if updErr := s.tableRepo.UpdateStatus(txCtx, *order.TableID, model.TableStatusOccupied); updErr != nil {
				return fmt.Errorf("failed to occupy table: %w", updErr)
			}
		}

		return s.appendHistory(txCtx, order.ID, order.StoreCode, actor, ip, map[string]any{
			"action": "create",
			"status": order.Status,
			"total":  order.Total,
		})
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("order_created", &order)

	return s.orderRepo.FindByIDWithItems(ctx, order.ID)
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	return s.orderRepo.FindByIDWithItems(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.orderRepo.List(ctx, repository.OrderListFilter{
		StoreCode:     filter.StoreCode,
		Status:        filter.Status,
		PaymentStatus: filter.PaymentStatus,
		SalesChannel:  filter.SalesChannel,
		TableID:       filter.TableID,
		Page:          filter.Page,
		Limit:         filter.Limit,
	})
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, req UpdateOrderStatusRequest) (*model.Order, error) {
	valid := false
	for _, st := range model.AllowedOrderStatuses {
		if req.Status == st {
			valid = true
			break
		}
	}
	if !valid {
		return nil, validation.Errors{{
			Field:   "status",
			Code:    validation.CodeInvalidEnum,
			Message: fmt.Sprintf("invalid order status %q", req.Status),
		}}
	}

	var order *model.Order
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		order, findErr = s.orderRepo.FindByID(txCtx, id)
		if findErr != nil {
			return fmt.Errorf("order not found: %w", findErr)
		}

		if order.IsTerminal() {
			return fmt.Errorf("order %s is already %s", order.OrderNumber, order.Status)
		}
		if !CanTransition(order.Status, req.Status) {
			return fmt.Errorf("cannot move order from %s to %s", order.Status, req.Status)
		}

		previous := order.Status
		order.Status = req.Status
		if req.Status == model.OrderStatusCancelled && order.TableID != nil {
			if updErr := s.tableRepo.UpdateStatus(txCtx, *order.TableID, model.TableStatusAvailable); updErr != nil {
				return fmt.Errorf("failed to release table: %w", updErr)
			}
		}

		if updErr := s.orderRepo.Update(txCtx, order); updErr != nil {
			return fmt.Errorf("failed to update order: %w", updErr)
		}

		return s.appendHistory(txCtx, order.ID, order.StoreCode, req.Actor, req.IPAddress, map[string]any{
			"action": "status_change",
			"from":   previous,
			"to":     req.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("order_status", order)
	return order, nil
}

// Checkout settles a served order: writes the immutable transaction with
// snapshotted lines, deducts tracked stock with audit rows, releases the
// table, and accrues loyalty points (1 point per 10,000 spent).
func (s *orderService) Checkout(ctx context.Context, id uint, req CheckoutRequest) (*model.Transaction, error) {
	var created *model.Transaction

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		order, findErr := s.orderRepo.FindByIDWithItems(txCtx, id)
		if findErr != nil {
			return fmt.Errorf("order not found: %w", findErr)
		}
		if order.IsTerminal() {
			return fmt.Errorf("order %s is already %s", order.OrderNumber, order.Status)
		}

		txID, genErr := s.generateTransactionID(txCtx)
		if genErr != nil {
			return fmt.Errorf("failed to generate transaction id: %w", genErr)
		}

		in := validation.TransactionInput{
			TransactionID: txID,
			OrderID:       &order.ID,
			Subtotal:      order.Subtotal,
			Tax:           order.Tax,
			Total:         order.Total,
			PaymentMethod: req.PaymentMethod,
			CashierName:   req.CashierName,
			StoreCode:     order.StoreCode,
		}
		for _, item := range order.Items {
			name := ""
			if item.Product != nil {
				name = item.Product.Name
			}
			in.Items = append(in.Items, validation.TransactionItemInput{
				ProductID: item.ProductID,
				Name:      name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Total:     item.UnitPrice.Mul(item.Quantity).Sub(item.Discount),
			})
		}
		tx, verrs := validation.ValidateTransaction(in)
		if verrs != nil {
			return verrs
		}

		if createErr := s.txRepo.Create(txCtx, &tx); createErr != nil {
			return fmt.Errorf("failed to create transaction: %w", createErr)
		}
		created = &tx

		// Deduct stock per sold line, whole units only for tracked products.
		for _, item := range order.Items {
			product, lockErr := s.productRepo.FindByIDForUpdate(txCtx, item.ProductID)
			if lockErr != nil {
				return fmt.Errorf("product %d not found: %w", item.ProductID, lockErr)
			}
			if !product.TrackStock {
				continue
			}
			sold := int(item.Quantity.Ceil().IntPart())
			newStock := product.Stock - sold
			if newStock < 0 {
				newStock = 0
			}
			audit, verrs := validation.ValidateInventoryTransaction(validation.InventoryTransactionInput{
				ProductID:     product.ID,
				Type:          model.InventorySale,
				Quantity:      newStock - product.Stock,
				PreviousStock: product.Stock,
				NewStock:      newStock,
				Reference:     order.OrderNumber,
				EmployeeID:    order.EmployeeID,
				StoreCode:     order.StoreCode,
			})
			if verrs != nil {
				return verrs
			}
			if updErr := s.productRepo.UpdateStock(txCtx, product.ID, newStock); updErr != nil {
				return fmt.Errorf("failed to update stock: %w", updErr)
			}
			if auditErr := s.invTxRepo.Create(txCtx, &audit); auditErr != nil {
				return fmt.Errorf("failed to write stock audit: %w", auditErr)
			}
		}

		order.Status = model.OrderStatusPaid
		order.PaymentStatus = model.PaymentStatusPaid
		if updErr := s.orderRepo.Update(txCtx, order); updErr != nil {
			return fmt.Errorf("failed to close order: %w", updErr)
		}

		if order.TableID != nil {
			if updErr := s.tableRepo.UpdateStatus(txCtx, *order.TableID, model.TableStatusAvailable); updErr != nil {
				return fmt.Errorf("failed to release table: %w", updErr)
			}
		}

		if order.CustomerID != nil {
			if loyaltyErr := s.accruePoints(txCtx, *order.CustomerID, order); loyaltyErr != nil {
				return loyaltyErr
			}
		}

		return s.appendHistory(txCtx, order.ID, order.StoreCode, req.Actor, req.IPAddress, map[string]any{
			"action":         "checkout",
			"transaction_id": txID,
			"payment_method": req.PaymentMethod,
		})
	})
	if err != nil {
		return nil, err
	}

	if created.OrderID != nil {
		if order, findErr := s.orderRepo.FindByID(ctx, *created.OrderID); findErr == nil {
			s.broadcast("order_paid", order)
		}
	}

	return created, nil
}

func (s *orderService) GetHistory(ctx context.Context, id uint) ([]model.OrderChangeHistory, error) {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	return s.orderRepo.ListHistory(ctx, id)
}

// --- Helpers ---

var pointDivisor = decimal.NewFromInt(10_000)

func (s *orderService) accruePoints(ctx context.Context, customerID uint, order *model.Order) error {
	customer, err := s.customerRepo.FindByIDForUpdate(ctx, customerID)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}

	earned := int(order.Total.Div(pointDivisor).Floor().IntPart())
	if earned <= 0 {
		return nil
	}

	pt, verrs := validation.ValidatePointTransaction(validation.PointTransactionInput{
		CustomerRef:     customer.ID,
		Type:            model.PointEarned,
		Points:          earned,
		PreviousBalance: customer.Points,
		NewBalance:      customer.Points + earned,
		Reference:       order.OrderNumber,
		StoreCode:       order.StoreCode,
	})
	if verrs != nil {
		return verrs
	}

	customer.Points += earned
	customer.TotalSpent = customer.TotalSpent.Add(order.Total)
	customer.MembershipLevel = MembershipLevelFor(customer.TotalSpent)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return s.customerRepo.CreatePointTransaction(ctx, &pt)
}

func (s *orderService) appendHistory(ctx context.Context, orderID uint, storeCode, actor, ip string, change map[string]any) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to encode change description: %w", err)
	}
	return s.orderRepo.AppendHistory(ctx, &model.OrderChangeHistory{
		OrderID:     orderID,
		Actor:       actor,
		IPAddress:   ip,
		Description: string(payload),
		StoreCode:   storeCode,
	})
}

func (s *orderService) broadcast(event string, order *model.Order) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(orderEvent{
		Event:       event,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		StoreCode:   order.StoreCode,
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}

func (s *orderService) generateOrderNumber(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "ORD-" + today + "-"

	count, err := s.orderRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

func (s *orderService) generateTransactionID(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "TXN-" + today + "-"

	count, err := s.txRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}
