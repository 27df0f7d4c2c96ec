package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// OrderItemInput is a loose line item candidate.
type OrderItemInput struct {
	ProductID uint   `json:"productId"`
	Quantity  any    `json:"quantity"`
	UnitPrice any    `json:"unitPrice"`
	Discount  any    `json:"discount"`
	Tax       any    `json:"tax"`
	Status    string `json:"status"`
	Note      string `json:"note"`
}

// OrderInput is a loose order creation candidate. OrderNumber may be
// empty: the service generates it before persisting.
type OrderInput struct {
	OrderNumber    string           `json:"orderNumber"`
	TableID        *uint            `json:"tableId"`
	EmployeeID     *uint            `json:"employeeId"`
	CustomerID     *uint            `json:"customerId"`
	Status         string           `json:"status"`
	PaymentStatus  string           `json:"paymentStatus"`
	Subtotal       any              `json:"subtotal"`
	Tax            any              `json:"tax"`
	Discount       any              `json:"discount"`
	Total          any              `json:"total"`
	EInvoiceStatus int              `json:"eInvoiceStatus"`
	SalesChannel   string           `json:"salesChannel"`
	Note           string           `json:"note"`
	StoreCode      string           `json:"storeCode"`
	Items          []OrderItemInput `json:"items"`
}

// ValidateOrderItem normalizes one line item independently of its parent.
func ValidateOrderItem(in OrderItemInput) (model.OrderItem, Errors) {
	var errs Errors

	if in.ProductID == 0 {
		errs = append(errs, required("productId"))
	}
	qty, ferr := quantity("quantity", in.Quantity)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	unitPrice, ferr := money("unitPrice", in.UnitPrice)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	discount, ferr := optionalMoney("discount", in.Discount)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	tax, ferr := optionalMoney("tax", in.Tax)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	// The empty string is the valid initial state, checked before the enum.
	status := in.Status
	if status != model.OrderItemStatusNone {
		var sErr *FieldError
		status, sErr = enum("status", status, model.OrderItemStatusNone, []string{
			model.OrderItemStatusPending,
			model.OrderItemStatusProgress,
			model.OrderItemStatusCompleted,
		})
		if sErr != nil {
			errs = append(errs, *sErr)
		}
	}

	if errs != nil {
		return model.OrderItem{}, errs
	}

	return model.OrderItem{
		ProductID: in.ProductID,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Discount:  discount,
		Tax:       tax,
		Status:    status,
		Note:      in.Note,
	}, nil
}

// ValidateOrder normalizes an order candidate, validating nested items
// per item and prefixing their field names with the item index.
func ValidateOrder(in OrderInput) (model.Order, Errors) {
	var errs Errors

	status, ferr := enum("status", in.Status, model.OrderStatusPending, model.AllowedOrderStatuses)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	paymentStatus, ferr := enum("paymentStatus", in.PaymentStatus, model.PaymentStatusPending, model.AllowedPaymentStatuses)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	salesChannel, ferr := enum("salesChannel", in.SalesChannel, model.ChannelTable, model.AllowedSalesChannels)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if !model.ValidEInvoiceStatus(in.EInvoiceStatus) {
		errs = append(errs, FieldError{Field: "eInvoiceStatus", Code: CodeOutOfRange, Message: "eInvoiceStatus must be between 0 and 10"})
	}

	subtotal, ferr := optionalMoney("subtotal", in.Subtotal)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	tax, ferr := optionalMoney("tax", in.Tax)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	discount, ferr := optionalMoney("discount", in.Discount)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	total, ferr := optionalMoney("total", in.Total)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for i, itemIn := range in.Items {
		item, itemErrs := ValidateOrderItem(itemIn)
		if itemErrs != nil {
			for _, fe := range itemErrs {
				fe.Field = itemField(i, fe.Field)
				errs = append(errs, fe)
			}
			continue
		}
		items = append(items, item)
	}

	if errs != nil {
		return model.Order{}, errs
	}

	return model.Order{
		OrderNumber:    strings.TrimSpace(in.OrderNumber),
		TableID:        in.TableID,
		EmployeeID:     in.EmployeeID,
		CustomerID:     in.CustomerID,
		Status:         status,
		PaymentStatus:  paymentStatus,
		Subtotal:       subtotal,
		Tax:            tax,
		Discount:       discount,
		Total:          total,
		EInvoiceStatus: in.EInvoiceStatus,
		SalesChannel:   salesChannel,
		Note:           in.Note,
		StoreCode:      strings.TrimSpace(in.StoreCode),
		Items:          items,
	}, nil
}
