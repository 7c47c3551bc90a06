package numwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupees(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{67, "Sixty Seven Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{567, "Five Hundred and Sixty Seven Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1001, "One Thousand One Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{250000, "Two Lakh Fifty Thousand Rupees Only"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Rupees Only"},
		{70000105, "Seven Crore One Hundred and Five Rupees Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Rupees(tc.amount), "amount %d", tc.amount)
	}
}
