package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitJurisdiction(t *testing.T) {
	t.Run("intra_state_halves_tax", func(t *testing.T) {
		s := SplitJurisdiction(118, "Karnataka", "Karnataka")
		assert.Equal(t, 59.0, s.CGST)
		assert.Equal(t, 59.0, s.SGST)
		assert.Equal(t, 0.0, s.IGST)
	})

	t.Run("inter_state_uses_igst", func(t *testing.T) {
		s := SplitJurisdiction(100, "Delhi", "Karnataka")
		assert.Equal(t, 0.0, s.CGST)
		assert.Equal(t, 0.0, s.SGST)
		assert.Equal(t, 100.0, s.IGST)
	})

	t.Run("comparison_is_case_insensitive_and_trimmed", func(t *testing.T) {
		s := SplitJurisdiction(50, "  karnataka ", "KARNATAKA")
		assert.Equal(t, 25.0, s.CGST)
		assert.Equal(t, 25.0, s.SGST)
	})

	t.Run("missing_buyer_state_defaults_intra", func(t *testing.T) {
		s := SplitJurisdiction(40, "", "Karnataka")
		assert.Equal(t, 20.0, s.CGST)
		assert.Equal(t, 20.0, s.SGST)
		assert.Equal(t, 0.0, s.IGST)
	})

	t.Run("missing_seller_state_defaults_intra", func(t *testing.T) {
		s := SplitJurisdiction(40, "Delhi", "")
		assert.Equal(t, 20.0, s.CGST)
		assert.Equal(t, 20.0, s.SGST)
	})

	t.Run("split_sums_to_tax", func(t *testing.T) {
		for _, tax := range []float64{0, 0.01, 37.77, 1000} {
			intra := SplitJurisdiction(tax, "A", "A")
			assert.InDelta(t, tax, intra.CGST+intra.SGST+intra.IGST, 1e-9)
			inter := SplitJurisdiction(tax, "A", "B")
			assert.InDelta(t, tax, inter.CGST+inter.SGST+inter.IGST, 1e-9)
		}
	})
}
