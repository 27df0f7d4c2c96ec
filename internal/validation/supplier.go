package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"pos-backend/internal/model"
)

// SupplierInput is a loose supplier creation candidate.
type SupplierInput struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	PaymentTerms string `json:"paymentTerms"`
	Status       string `json:"status"`
	StoreCode    string `json:"storeCode"`
}

// ValidateSupplier normalizes a supplier candidate.
func ValidateSupplier(in SupplierInput) (model.Supplier, Errors) {
	var errs Errors

	code := strings.TrimSpace(in.Code)
	if code == "" {
		errs = append(errs, required("code"))
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, required("name"))
	}
	status, ferr := enum("status", in.Status, model.SupplierActive, model.AllowedSupplierStatuses)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.Supplier{}, errs
	}

	return model.Supplier{
		Code:         code,
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Address:      in.Address,
		PaymentTerms: in.PaymentTerms,
		Status:       status,
		StoreCode:    strings.TrimSpace(in.StoreCode),
	}, nil
}

// PurchaseReceiptItemInput is a loose receipt line candidate.
type PurchaseReceiptItemInput struct {
	ProductID        uint `json:"productId"`
	Quantity         any  `json:"quantity"`
	ReceivedQuantity any  `json:"receivedQuantity"`
	UnitPrice        any  `json:"unitPrice"`
	DiscountPercent  any  `json:"discountPercent"`
	DiscountAmount   any  `json:"discountAmount"`
	RowOrder         int  `json:"rowOrder"`
}

// PurchaseReceiptInput is a loose purchase receipt candidate.
type PurchaseReceiptInput struct {
	ReceiptNumber string                     `json:"receiptNumber"`
	SupplierID    uint                       `json:"supplierId"`
	ReceiptDate   any                        `json:"receiptDate"`
	IsPaid        bool                       `json:"isPaid"`
	Subtotal      any                        `json:"subtotal"`
	Discount      any                        `json:"discount"`
	Tax           any                        `json:"tax"`
	Total         any                        `json:"total"`
	Note          string                     `json:"note"`
	StoreCode     string                     `json:"storeCode"`
	Items         []PurchaseReceiptItemInput `json:"items"`
}

// ValidatePurchaseReceiptItem normalizes one receipt line independently.
// ReceivedQuantity defaults to zero: nothing delivered yet.
func ValidatePurchaseReceiptItem(in PurchaseReceiptItemInput) (model.PurchaseReceiptItem, Errors) {
	var errs Errors

	if in.ProductID == 0 {
		errs = append(errs, required("productId"))
	}
	qty, ferr := quantity("quantity", in.Quantity)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	received := decimal.Zero
	if in.ReceivedQuantity != nil {
		received, ferr = parseDecimal("receivedQuantity", in.ReceivedQuantity)
		if ferr != nil {
			errs = append(errs, *ferr)
		} else if received.IsNegative() {
			errs = append(errs, FieldError{Field: "receivedQuantity", Code: CodeOutOfRange, Message: "receivedQuantity must not be negative"})
		} else {
			received = received.Truncate(4)
		}
	}

	unitPrice, ferr := money("unitPrice", in.UnitPrice)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	discountPercent, ferr := optionalMoney("discountPercent", in.DiscountPercent)
	if ferr != nil {
		errs = append(errs, *ferr)
	} else if discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, FieldError{Field: "discountPercent", Code: CodeOutOfRange, Message: "discountPercent must be between 0 and 100"})
	}
	discountAmount, ferr := optionalMoney("discountAmount", in.DiscountAmount)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.PurchaseReceiptItem{}, errs
	}

	return model.PurchaseReceiptItem{
		ProductID:        in.ProductID,
		Quantity:         qty,
		ReceivedQuantity: received,
		UnitPrice:        unitPrice,
		DiscountPercent:  discountPercent,
		DiscountAmount:   discountAmount,
		RowOrder:         in.RowOrder,
	}, nil
}

// ValidatePurchaseReceipt normalizes a purchase receipt candidate with
// per-item validation of its lines.
func ValidatePurchaseReceipt(in PurchaseReceiptInput) (model.PurchaseReceipt, Errors) {
	var errs Errors

	if in.SupplierID == 0 {
		errs = append(errs, required("supplierId"))
	}
	receiptDate, ferr := optionalDate("receiptDate", in.ReceiptDate)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	subtotal, ferr := optionalMoney("subtotal", in.Subtotal)
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
	total, ferr := optionalMoney("total", in.Total)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	items := make([]model.PurchaseReceiptItem, 0, len(in.Items))
	for i, itemIn := range in.Items {
		item, itemErrs := ValidatePurchaseReceiptItem(itemIn)
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
		return model.PurchaseReceipt{}, errs
	}

	return model.PurchaseReceipt{
		ReceiptNumber: strings.TrimSpace(in.ReceiptNumber),
		SupplierID:    in.SupplierID,
		ReceiptDate:   receiptDate,
		IsPaid:        in.IsPaid,
		Subtotal:      subtotal,
		Discount:      discount,
		Tax:           tax,
		Total:         total,
		Note:          in.Note,
		StoreCode:     strings.TrimSpace(in.StoreCode),
		Items:         items,
	}, nil
}
