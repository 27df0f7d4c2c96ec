package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// TransactionItemInput is a loose sold-line candidate.
type TransactionItemInput struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  any    `json:"quantity"`
	UnitPrice any    `json:"unitPrice"`
	Total     any    `json:"total"`
}

// TransactionInput is a loose completed-sale candidate. TransactionID
// may be empty: the service generates it.
type TransactionInput struct {
	TransactionID string                 `json:"transactionId"`
	OrderID       *uint                  `json:"orderId"`
	InvoiceID     *uint                  `json:"invoiceId"`
	Subtotal      any                    `json:"subtotal"`
	Tax           any                    `json:"tax"`
	Total         any                    `json:"total"`
	PaymentMethod string                 `json:"paymentMethod"`
	CashierName   string                 `json:"cashierName"`
	StoreCode     string                 `json:"storeCode"`
	Items         []TransactionItemInput `json:"items"`
}

// ValidateTransactionItem normalizes one sold line independently.
func ValidateTransactionItem(in TransactionItemInput) (model.TransactionItem, Errors) {
	var errs Errors

	if in.ProductID == 0 {
		errs = append(errs, required("productId"))
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, required("name"))
	}
	qty, ferr := quantity("quantity", in.Quantity)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	unitPrice, ferr := money("unitPrice", in.UnitPrice)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	total, ferr := money("total", in.Total)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.TransactionItem{}, errs
	}

	return model.TransactionItem{
		ProductID: in.ProductID,
		Name:      strings.TrimSpace(in.Name),
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     total,
	}, nil
}

// ValidateTransaction normalizes a completed sale candidate.
func ValidateTransaction(in TransactionInput) (model.Transaction, Errors) {
	var errs Errors

	subtotal, ferr := money("subtotal", in.Subtotal)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	tax, ferr := optionalMoney("tax", in.Tax)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	total, ferr := money("total", in.Total)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		errs = append(errs, required("paymentMethod"))
	}

	items := make([]model.TransactionItem, 0, len(in.Items))
	for i, itemIn := range in.Items {
		item, itemErrs := ValidateTransactionItem(itemIn)
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
		return model.Transaction{}, errs
	}

	return model.Transaction{
		TransactionID: strings.TrimSpace(in.TransactionID),
		OrderID:       in.OrderID,
		InvoiceID:     in.InvoiceID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		CashierName:   strings.TrimSpace(in.CashierName),
		StoreCode:     strings.TrimSpace(in.StoreCode),
		Items:         items,
	}, nil
}
