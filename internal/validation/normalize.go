package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-backend/internal/model"
)

// maxProductPrice is the exclusive upper bound for product prices.
var maxProductPrice = decimal.NewFromInt(100_000_000)

// parseDecimal converts the loose JSON representations a candidate can
// carry (string, number, json.Number) into a decimal.
func parseDecimal(field string, v any) (decimal.Decimal, *FieldError) {
	switch val := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s %q is not a valid number", field, val)}
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s %q is not a valid number", field, val)}
		}
		return d, nil
	case decimal.Decimal:
		return val, nil
	default:
		return decimal.Zero, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s has unsupported type %T", field, v)}
	}
}

// money normalizes a required monetary input: string or number, >= 0,
// scaled to 2 decimal places.
func money(field string, v any) (decimal.Decimal, *FieldError) {
	if v == nil {
		return decimal.Zero, &FieldError{Field: field, Code: CodeRequired, Message: field + " is required"}
	}
	d, ferr := parseDecimal(field, v)
	if ferr != nil {
		return decimal.Zero, ferr
	}
	if d.IsNegative() {
		return decimal.Zero, &FieldError{Field: field, Code: CodeOutOfRange, Message: field + " must not be negative"}
	}
	return d.Round(2), nil
}

// optionalMoney is money with absent input normalized to zero.
func optionalMoney(field string, v any) (decimal.Decimal, *FieldError) {
	if v == nil || v == "" {
		return decimal.Zero, nil
	}
	return money(field, v)
}

// productPrice applies the product bound: 0 <= price < 100,000,000.
func productPrice(field string, v any) (decimal.Decimal, *FieldError) {
	d, ferr := money(field, v)
	if ferr != nil {
		return decimal.Zero, ferr
	}
	if d.GreaterThanOrEqual(maxProductPrice) {
		return decimal.Zero, &FieldError{Field: field, Code: CodeOutOfRange, Message: field + " must be less than 100000000"}
	}
	return d, nil
}

// quantity normalizes a fractional amount: > 0, at most 4 decimal
// places kept (truncated, never rounded to an integer).
func quantity(field string, v any) (decimal.Decimal, *FieldError) {
	if v == nil {
		return decimal.Zero, &FieldError{Field: field, Code: CodeRequired, Message: field + " is required"}
	}
	d, ferr := parseDecimal(field, v)
	if ferr != nil {
		return decimal.Zero, ferr
	}
	if !d.IsPositive() {
		return decimal.Zero, &FieldError{Field: field, Code: CodeOutOfRange, Message: field + " must be greater than zero"}
	}
	return d.Truncate(4), nil
}

// taxRate normalizes the product tax rate input.
// Numeric input in [0,100] is stored as the truncated integer string.
// The two sentinel labels are stored as rate "0" with the label kept
// for invoice rendering. Absent input falls back to the default rate.
func taxRate(field string, v any) (rate string, label string, ferr *FieldError) {
	if v == nil || v == "" {
		return model.DefaultTaxRate, "", nil
	}
	if s, ok := v.(string); ok {
		switch strings.TrimSpace(s) {
		case model.TaxRateExempt:
			return "0", model.TaxRateExempt, nil
		case model.TaxRateNotDeclare:
			return "0", model.TaxRateNotDeclare, nil
		}
	}
	d, perr := parseDecimal(field, v)
	if perr != nil {
		return "", "", perr
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return "", "", &FieldError{Field: field, Code: CodeOutOfRange, Message: field + " must be between 0 and 100"}
	}
	return d.Truncate(0).String(), "", nil
}

// optionalDate accepts a native time or an ISO date/datetime string and
// normalizes to a date value. Absent or empty input passes through as nil.
func optionalDate(field string, v any) (*time.Time, *FieldError) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		if val.IsZero() {
			return nil, nil
		}
		d := toDate(val)
		return &d, nil
	case *time.Time:
		if val == nil || val.IsZero() {
			return nil, nil
		}
		d := toDate(*val)
		return &d, nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
		for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				d := toDate(t)
				return &d, nil
			}
		}
		return nil, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s %q is not a valid date", field, s)}
	default:
		return nil, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s has unsupported type %T", field, v)}
	}
}

// optionalTime is optionalDate without the date truncation, for
// clock-in/out style timestamps.
func optionalTime(field string, v any) (*time.Time, *FieldError) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		if val.IsZero() {
			return nil, nil
		}
		return &val, nil
	case *time.Time:
		if val == nil || val.IsZero() {
			return nil, nil
		}
		return val, nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return &t, nil
			}
		}
		return nil, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s %q is not a valid timestamp", field, s)}
	default:
		return nil, &FieldError{Field: field, Code: CodeMalformed, Message: fmt.Sprintf("%s has unsupported type %T", field, v)}
	}
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// placement accepts string or numeric floor/zone input, defaulting when absent.
func placement(v any, def string) string {
	switch val := v.(type) {
	case nil:
		return def
	case string:
		if strings.TrimSpace(val) == "" {
			return def
		}
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatInt(int64(val), 10)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return def
	}
}

// optionalInt parses a loose integer input, defaulting when absent.
func optionalInt(field string, v any, def int) (int, *FieldError) {
	if v == nil || v == "" {
		return def, nil
	}
	d, ferr := parseDecimal(field, v)
	if ferr != nil {
		return 0, ferr
	}
	return int(d.IntPart()), nil
}

// enum rejects values outside the allowed set; absent input takes def.
func enum(field, value, def string, allowed []string) (string, *FieldError) {
	if value == "" {
		return def, nil
	}
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	fe := enumError(field, value, allowed)
	return "", &fe
}
