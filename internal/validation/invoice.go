package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// InvoiceItemInput is a loose invoice line candidate.
type InvoiceItemInput struct {
	ProductID *uint  `json:"productId"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Quantity  any    `json:"quantity"`
	UnitPrice any    `json:"unitPrice"`
	TaxRate   any    `json:"taxRate"`
	Total     any    `json:"total"`
}

// InvoiceInput is a loose tax invoice candidate.
type InvoiceInput struct {
	InvoiceNumber   string             `json:"invoiceNumber"`
	OrderID         *uint              `json:"orderId"`
	TransactionRef  *uint              `json:"transactionRef"`
	CustomerName    string             `json:"customerName"`
	CustomerTaxCode string             `json:"customerTaxCode"`
	BuyerAddress    string             `json:"buyerAddress"`
	Subtotal        any                `json:"subtotal"`
	Tax             any                `json:"tax"`
	Total           any                `json:"total"`
	EInvoiceStatus  int                `json:"eInvoiceStatus"`
	StoreCode       string             `json:"storeCode"`
	Items           []InvoiceItemInput `json:"items"`
}

// ValidateInvoiceItem normalizes one invoice line independently. The
// line tax rate follows the same sentinel rules as the product rate.
func ValidateInvoiceItem(in InvoiceItemInput) (model.InvoiceItem, Errors) {
	var errs Errors

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
	rate, label, ferr := taxRate("taxRate", in.TaxRate)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.InvoiceItem{}, errs
	}

	return model.InvoiceItem{
		ProductID:    in.ProductID,
		Name:         strings.TrimSpace(in.Name),
		Unit:         strings.TrimSpace(in.Unit),
		Quantity:     qty,
		UnitPrice:    unitPrice,
		TaxRate:      rate,
		TaxRateLabel: label,
		Total:        total,
	}, nil
}

// ValidateInvoice normalizes a tax invoice candidate.
func ValidateInvoice(in InvoiceInput) (model.Invoice, Errors) {
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
	if !model.ValidEInvoiceStatus(in.EInvoiceStatus) {
		errs = append(errs, FieldError{Field: "eInvoiceStatus", Code: CodeOutOfRange, Message: "eInvoiceStatus must be between 0 and 10"})
	}

	items := make([]model.InvoiceItem, 0, len(in.Items))
	for i, itemIn := range in.Items {
		item, itemErrs := ValidateInvoiceItem(itemIn)
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
		return model.Invoice{}, errs
	}

	return model.Invoice{
		InvoiceNumber:   strings.TrimSpace(in.InvoiceNumber),
		OrderID:         in.OrderID,
		TransactionRef:  in.TransactionRef,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerTaxCode: strings.TrimSpace(in.CustomerTaxCode),
		BuyerAddress:    in.BuyerAddress,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		EInvoiceStatus:  in.EInvoiceStatus,
		StoreCode:       strings.TrimSpace(in.StoreCode),
		Items:           items,
	}, nil
}
