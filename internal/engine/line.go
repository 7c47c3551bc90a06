package engine

import "gstbill/internal/domain"

// LineItem holds the three inputs that determine a line's value, plus the
// resolved tax rate.
type LineItem struct {
	Quantity        float64
	UnitRate        float64
	DiscountPercent float64
	TaxRatePercent  float64
}

// LineValue holds the derived amounts for one line item.
type LineValue struct {
	BaseAmount     float64
	DiscountAmount float64
	TaxableAmount  float64
	TaxAmount      float64
	LineTotal      float64
}

// ValidateLine rejects inputs that indicate a data-entry mistake. Out-of-range
// discounts are rejected, not clamped; hiding the mistake is worse than a
// visible error.
func ValidateLine(it LineItem) error {
	if it.Quantity < 0 || it.UnitRate < 0 {
		return domain.ErrInvalidLineItem
	}
	if it.DiscountPercent < 0 || it.DiscountPercent > 100 {
		return domain.ErrInvalidDiscount
	}
	if it.TaxRatePercent < 0 || it.TaxRatePercent > 100 {
		return domain.ErrInvalidTaxRate
	}
	return nil
}

// ValueLine derives a line's amounts. Zero quantity or rate yields all-zero
// outputs; that is a valid degenerate line, not an error.
func ValueLine(it LineItem) LineValue {
	base := it.Quantity * it.UnitRate
	discount := base * it.DiscountPercent / 100
	taxable := base - discount
	tax := taxable * it.TaxRatePercent / 100
	return LineValue{
		BaseAmount:     base,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxAmount:      tax,
		LineTotal:      taxable + tax,
	}
}
