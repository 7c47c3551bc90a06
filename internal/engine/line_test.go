package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func TestValueLine(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		lv := ValueLine(LineItem{Quantity: 2, UnitRate: 100, DiscountPercent: 0, TaxRatePercent: 18})
		assert.Equal(t, 200.0, lv.BaseAmount)
		assert.Equal(t, 0.0, lv.DiscountAmount)
		assert.Equal(t, 200.0, lv.TaxableAmount)
		assert.Equal(t, 36.0, lv.TaxAmount)
		assert.Equal(t, 236.0, lv.LineTotal)
	})

	t.Run("with_item_discount", func(t *testing.T) {
		lv := ValueLine(LineItem{Quantity: 1, UnitRate: 500, DiscountPercent: 10, TaxRatePercent: 18})
		assert.Equal(t, 500.0, lv.BaseAmount)
		assert.Equal(t, 50.0, lv.DiscountAmount)
		assert.Equal(t, 450.0, lv.TaxableAmount)
		assert.InDelta(t, 81.0, lv.TaxAmount, 1e-9)
		assert.InDelta(t, 531.0, lv.LineTotal, 1e-9)
	})

	t.Run("zero_quantity_is_all_zero", func(t *testing.T) {
		lv := ValueLine(LineItem{Quantity: 0, UnitRate: 100, TaxRatePercent: 18})
		assert.Equal(t, LineValue{}, lv)
	})

	t.Run("zero_rate_is_all_zero", func(t *testing.T) {
		lv := ValueLine(LineItem{Quantity: 5, UnitRate: 0, TaxRatePercent: 18})
		assert.Equal(t, LineValue{}, lv)
	})

	t.Run("line_total_identity", func(t *testing.T) {
		lv := ValueLine(LineItem{Quantity: 3, UnitRate: 99.99, DiscountPercent: 7.5, TaxRatePercent: 12})
		assert.InDelta(t, lv.TaxableAmount+lv.TaxAmount, lv.LineTotal, 1e-9)
		assert.InDelta(t, lv.BaseAmount-lv.DiscountAmount, lv.TaxableAmount, 1e-9)
	})
}

func TestValidateLine(t *testing.T) {
	require.NoError(t, ValidateLine(LineItem{Quantity: 1, UnitRate: 1, TaxRatePercent: 18}))

	cases := []struct {
		name string
		item LineItem
		err  error
	}{
		{"negative_quantity", LineItem{Quantity: -1, UnitRate: 10}, domain.ErrInvalidLineItem},
		{"negative_rate", LineItem{Quantity: 1, UnitRate: -10}, domain.ErrInvalidLineItem},
		{"discount_over_100", LineItem{Quantity: 1, UnitRate: 10, DiscountPercent: 101}, domain.ErrInvalidDiscount},
		{"negative_discount", LineItem{Quantity: 1, UnitRate: 10, DiscountPercent: -1}, domain.ErrInvalidDiscount},
		{"tax_over_100", LineItem{Quantity: 1, UnitRate: 10, TaxRatePercent: 101}, domain.ErrInvalidTaxRate},
		{"negative_tax", LineItem{Quantity: 1, UnitRate: 10, TaxRatePercent: -2}, domain.ErrInvalidTaxRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateLine(tc.item), tc.err)
		})
	}
}
