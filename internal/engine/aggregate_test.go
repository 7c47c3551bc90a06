package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func sampleItems() []LineItem {
	return []LineItem{
		{Quantity: 2, UnitRate: 100, DiscountPercent: 0, TaxRatePercent: 18},
		{Quantity: 1, UnitRate: 500, DiscountPercent: 10, TaxRatePercent: 18},
	}
}

func TestComputeDocument_Scenario(t *testing.T) {
	// Intra-state invoice with item discount, 5% document discount,
	// non-taxable surcharge of 20 and round-off enabled.
	totals, err := ComputeDocument(DocumentInput{
		Items:       sampleItems(),
		Discount:    Discount{Mode: domain.DiscountModePercent, Value: 5},
		Surcharge:   20,
		RoundOff:    true,
		BuyerState:  "Karnataka",
		SellerState: "Karnataka",
	})
	require.NoError(t, err)

	assert.Equal(t, 700.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.ItemDiscountTotal)
	assert.InDelta(t, 617.5, totals.TaxableAfterDiscount, 1e-9) // 650 - 5%
	assert.InDelta(t, 111.15, totals.TaxAmount, 1e-9)           // 117 * 0.95
	assert.InDelta(t, totals.CGST, totals.SGST, 1e-9)
	assert.Equal(t, 0.0, totals.IGST)
	assert.Equal(t, 20.0, totals.AdditionalCharges)
	assert.InDelta(t, 748.65, totals.PreRoundTotal, 1e-9)
	assert.Equal(t, 749.0, totals.GrandTotal)
	assert.InDelta(t, 0.35, totals.RoundOffDelta, 1e-9)
	assert.Equal(t, totals.GrandTotal, float64(int64(totals.GrandTotal)))
}

func TestComputeDocument_Invariants(t *testing.T) {
	inputs := []DocumentInput{
		{Items: sampleItems(), Discount: Discount{Mode: domain.DiscountModeFlat, Value: 100}, Surcharge: 15, RoundOff: true, BuyerState: "Delhi", SellerState: "Karnataka"},
		{Items: sampleItems(), Discount: Discount{Mode: domain.DiscountModePercent, Value: 12.5}, BuyerState: "Karnataka", SellerState: "Karnataka"},
		{Items: nil},
	}

	for _, in := range inputs {
		totals, err := ComputeDocument(in)
		require.NoError(t, err)

		assert.InDelta(t,
			totals.TaxableAfterDiscount+totals.TaxAmount+totals.AdditionalCharges+totals.RoundOffDelta,
			totals.GrandTotal, 1e-9)
		assert.InDelta(t, totals.TaxAmount, totals.CGST+totals.SGST+totals.IGST, 1e-9)
		// Exactly one jurisdiction family may be non-zero.
		if totals.IGST != 0 {
			assert.Equal(t, 0.0, totals.CGST)
			assert.Equal(t, 0.0, totals.SGST)
		}
	}
}

func TestComputeDocument_TaxProration(t *testing.T) {
	// The prorated tax must preserve the effective tax rate:
	// finalTax/itemTaxSum == taxableAfterDiscount/taxableSum.
	items := sampleItems()
	taxableSum := 650.0
	itemTaxSum := 117.0

	for _, d := range []float64{10, 99.99, 325, 650} {
		totals, err := ComputeDocument(DocumentInput{
			Items:    items,
			Discount: Discount{Mode: domain.DiscountModeFlat, Value: d},
		})
		require.NoError(t, err)

		wantRatio := (taxableSum - d) / taxableSum
		assert.InDelta(t, wantRatio, totals.TaxAmount/itemTaxSum, 1e-9, "discount %v", d)
	}
}

func TestComputeDocument_FlatDiscountClamped(t *testing.T) {
	// A flat discount larger than the taxable sum cannot invert the document.
	totals, err := ComputeDocument(DocumentInput{
		Items:    sampleItems(),
		Discount: Discount{Mode: domain.DiscountModeFlat, Value: 10000},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, totals.TaxableAfterDiscount)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.GrandTotal)
}

func TestComputeDocument_EmptyDocument(t *testing.T) {
	totals, err := ComputeDocument(DocumentInput{})
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}

func TestComputeDocument_Rejections(t *testing.T) {
	t.Run("bad_line", func(t *testing.T) {
		_, err := ComputeDocument(DocumentInput{Items: []LineItem{{Quantity: -1, UnitRate: 5}}})
		assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
	})

	t.Run("discount_percent_over_100", func(t *testing.T) {
		_, err := ComputeDocument(DocumentInput{
			Items:    sampleItems(),
			Discount: Discount{Mode: domain.DiscountModePercent, Value: 120},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
	})

	t.Run("negative_discount", func(t *testing.T) {
		_, err := ComputeDocument(DocumentInput{
			Items:    sampleItems(),
			Discount: Discount{Mode: domain.DiscountModeFlat, Value: -5},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
	})

	t.Run("negative_surcharge", func(t *testing.T) {
		_, err := ComputeDocument(DocumentInput{Items: sampleItems(), Surcharge: -1})
		assert.Error(t, err)
	})
}

func TestComputeAggregate(t *testing.T) {
	t.Run("exclusive_adds_tax", func(t *testing.T) {
		totals, err := ComputeAggregate(AggregateInput{Amount: 1000, RatePercent: 18, Mode: domain.TaxModeExclusive})
		require.NoError(t, err)
		assert.Equal(t, 1000.0, totals.TaxableAfterDiscount)
		assert.InDelta(t, 180.0, totals.TaxAmount, 1e-9)
		assert.InDelta(t, 1180.0, totals.GrandTotal, 1e-9)
	})

	t.Run("inclusive_extracts_tax", func(t *testing.T) {
		totals, err := ComputeAggregate(AggregateInput{Amount: 1180, RatePercent: 18, Mode: domain.TaxModeInclusive})
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, totals.TaxableAfterDiscount, 1e-9)
		assert.InDelta(t, 180.0, totals.TaxAmount, 1e-9)
		assert.InDelta(t, 1180.0, totals.GrandTotal, 1e-9)
	})

	t.Run("round_trip_recovers_base", func(t *testing.T) {
		for _, base := range []float64{1, 99.99, 1000, 123456.78} {
			for _, rate := range []float64{0, 5, 12, 18, 28} {
				excl, err := ComputeAggregate(AggregateInput{Amount: base, RatePercent: rate, Mode: domain.TaxModeExclusive})
				require.NoError(t, err)
				incl, err := ComputeAggregate(AggregateInput{Amount: excl.GrandTotal, RatePercent: rate, Mode: domain.TaxModeInclusive})
				require.NoError(t, err)
				assert.InDelta(t, base, incl.TaxableAfterDiscount, 1e-6)
			}
		}
	})

	t.Run("splits_by_jurisdiction", func(t *testing.T) {
		totals, err := ComputeAggregate(AggregateInput{
			Amount: 1000, RatePercent: 18, Mode: domain.TaxModeExclusive,
			BuyerState: "Delhi", SellerState: "Karnataka",
		})
		require.NoError(t, err)
		assert.InDelta(t, 180.0, totals.IGST, 1e-9)
		assert.Equal(t, 0.0, totals.CGST)
	})

	t.Run("taxable_never_negative", func(t *testing.T) {
		totals, err := ComputeAggregate(AggregateInput{Amount: 0, RatePercent: 18, Mode: domain.TaxModeInclusive})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, totals.TaxableAfterDiscount, 0.0)
	})

	t.Run("rejects_bad_input", func(t *testing.T) {
		_, err := ComputeAggregate(AggregateInput{Amount: -1})
		assert.Error(t, err)
		_, err = ComputeAggregate(AggregateInput{Amount: 10, RatePercent: 120})
		assert.ErrorIs(t, err, domain.ErrInvalidTaxRate)
	})
}

func TestLineAggregationExactness(t *testing.T) {
	// sum(lineTotal) == taxableSum + itemTaxSum for any item list.
	items := []LineItem{
		{Quantity: 2, UnitRate: 100, TaxRatePercent: 18},
		{Quantity: 1, UnitRate: 500, DiscountPercent: 10, TaxRatePercent: 18},
		{Quantity: 7, UnitRate: 33.33, DiscountPercent: 2.5, TaxRatePercent: 5},
		{Quantity: 0, UnitRate: 10, TaxRatePercent: 12},
	}

	var lineTotals, taxableSum, taxSum float64
	for _, it := range items {
		lv := ValueLine(it)
		lineTotals += lv.LineTotal
		taxableSum += lv.TaxableAmount
		taxSum += lv.TaxAmount
	}
	assert.InDelta(t, taxableSum+taxSum, lineTotals, 1e-9)
}
