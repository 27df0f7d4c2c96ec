package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// ProductInput is a loose product creation candidate. Monetary and
// placement fields are any-typed so JSON strings and numbers both pass.
type ProductInput struct {
	Name             string `json:"name"`
	SKU              string `json:"sku"`
	Price            any    `json:"price"`
	PriceBeforeTax   any    `json:"priceBeforeTax"`
	PriceAfterTax    any    `json:"priceAfterTax"`
	PriceIncludesTax bool   `json:"priceIncludesTax"`
	TaxRate          any    `json:"taxRate"`
	Stock            any    `json:"stock"`
	TrackStock       *bool  `json:"trackStock"`
	CategoryID       *uint  `json:"categoryId"`
	ProductType      int    `json:"productType"`
	Unit             string `json:"unit"`
	Floor            any    `json:"floor"`
	Zone             any    `json:"zone"`
	SortOrder        int    `json:"sortOrder"`
	IsActive         *bool  `json:"isActive"`
	StoreCode        string `json:"storeCode"`
}

// ValidateProduct normalizes a product candidate or reports every field
// violation. Pure: no persistence lookups (SKU uniqueness is enforced by
// the unique index, not here).
func ValidateProduct(in ProductInput) (model.Product, Errors) {
	var errs Errors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, required("name"))
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		errs = append(errs, required("sku"))
	}

	price, ferr := productPrice("price", in.Price)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	priceBeforeTax, ferr := optionalMoney("priceBeforeTax", in.PriceBeforeTax)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	priceAfterTax, ferr := optionalMoney("priceAfterTax", in.PriceAfterTax)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	rate, label, ferr := taxRate("taxRate", in.TaxRate)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	stock, ferr := optionalInt("stock", in.Stock, 0)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	trackStock := true
	if in.TrackStock != nil {
		trackStock = *in.TrackStock
	}
	if trackStock && stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Code: CodeOutOfRange, Message: "stock must not be negative"})
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "Cái"
	}
	productType := in.ProductType
	if productType == 0 {
		productType = 1
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	if errs != nil {
		return model.Product{}, errs
	}

	return model.Product{
		Name:             name,
		SKU:              sku,
		Price:            price,
		PriceBeforeTax:   priceBeforeTax,
		PriceAfterTax:    priceAfterTax,
		PriceIncludesTax: in.PriceIncludesTax,
		TaxRate:          rate,
		TaxRateLabel:     label,
		Stock:            stock,
		TrackStock:       trackStock,
		CategoryID:       in.CategoryID,
		ProductType:      productType,
		Unit:             unit,
		Floor:            placement(in.Floor, "1"),
		Zone:             placement(in.Zone, "A"),
		SortOrder:        in.SortOrder,
		IsActive:         isActive,
		StoreCode:        strings.TrimSpace(in.StoreCode),
	}, nil
}
