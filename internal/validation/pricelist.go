package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// PriceListItemInput is a loose price override candidate.
type PriceListItemInput struct {
	ProductID uint `json:"productId"`
	Price     any  `json:"price"`
}

// PriceListInput is a loose price list candidate. Validity bounds accept
// native dates or ISO strings; absent bounds are open-ended.
type PriceListInput struct {
	Name      string               `json:"name"`
	ValidFrom any                  `json:"validFrom"`
	ValidTo   any                  `json:"validTo"`
	IsDefault bool                 `json:"isDefault"`
	StoreCode string               `json:"storeCode"`
	Items     []PriceListItemInput `json:"items"`
}

// ValidatePriceListItem normalizes one price override. Override prices
// follow the product price bound.
func ValidatePriceListItem(in PriceListItemInput) (model.PriceListItem, Errors) {
	var errs Errors

	if in.ProductID == 0 {
		errs = append(errs, required("productId"))
	}
	price, ferr := productPrice("price", in.Price)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.PriceListItem{}, errs
	}

	return model.PriceListItem{
		ProductID: in.ProductID,
		Price:     price,
	}, nil
}

// ValidatePriceList normalizes a price list candidate.
func ValidatePriceList(in PriceListInput) (model.PriceList, Errors) {
	var errs Errors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, required("name"))
	}
	validFrom, ferr := optionalDate("validFrom", in.ValidFrom)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	validTo, ferr := optionalDate("validTo", in.ValidTo)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	if validFrom != nil && validTo != nil && validTo.Before(*validFrom) {
		errs = append(errs, FieldError{Field: "validTo", Code: CodeOutOfRange, Message: "validTo must not be before validFrom"})
	}

	items := make([]model.PriceListItem, 0, len(in.Items))
	for i, itemIn := range in.Items {
		item, itemErrs := ValidatePriceListItem(itemIn)
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
		return model.PriceList{}, errs
	}

	return model.PriceList{
		Name:      name,
		ValidFrom: validFrom,
		ValidTo:   validTo,
		IsDefault: in.IsDefault,
		StoreCode: strings.TrimSpace(in.StoreCode),
		Items:     items,
	}, nil
}
