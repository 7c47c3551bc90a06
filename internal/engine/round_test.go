package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTotal(t *testing.T) {
	t.Run("disabled_is_identity", func(t *testing.T) {
		grand, delta := RoundTotal(748.65, false)
		assert.Equal(t, 748.65, grand)
		assert.Equal(t, 0.0, delta)
	})

	t.Run("rounds_up", func(t *testing.T) {
		grand, delta := RoundTotal(748.65, true)
		assert.Equal(t, 749.0, grand)
		assert.InDelta(t, 0.35, delta, 1e-9)
	})

	t.Run("rounds_down", func(t *testing.T) {
		grand, delta := RoundTotal(101.25, true)
		assert.Equal(t, 101.0, grand)
		assert.InDelta(t, -0.25, delta, 1e-9)
	})

	t.Run("half_rounds_away_from_zero", func(t *testing.T) {
		grand, _ := RoundTotal(10.5, true)
		assert.Equal(t, 11.0, grand)
	})

	t.Run("delta_magnitude_below_one", func(t *testing.T) {
		for _, v := range []float64{0.01, 0.49, 0.5, 99.99, 1234.5678} {
			_, delta := RoundTotal(v, true)
			assert.Less(t, math.Abs(delta), 1.0)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		grand, _ := RoundTotal(748.65, true)
		again, delta := RoundTotal(grand, true)
		assert.Equal(t, grand, again)
		assert.Equal(t, 0.0, delta)
	})
}
