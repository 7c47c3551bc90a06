package engine

import "math"

// RoundTotal optionally snaps a total to the nearest whole rupee using
// round-half-away-from-zero and reports the signed adjustment for audit
// display. The delta magnitude is always below one.
func RoundTotal(preRound float64, enabled bool) (grandTotal, delta float64) {
	if !enabled {
		return preRound, 0
	}
	grandTotal = math.Round(preRound)
	return grandTotal, grandTotal - preRound
}
