// Package numwords renders integer rupee amounts as Indian-numbering-system
// words for printed documents.
package numwords

import "strings"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// Rupees converts an integer rupee amount into words, e.g.
// Rupees(100000) == "One Lakh Rupees Only". Only the integer part of an
// amount is ever converted; callers truncate beforehand.
func Rupees(amount int64) string {
	if amount == 0 {
		return "Zero Rupees Only"
	}
	w := convert(amount)
	return strings.TrimSpace(w) + " Rupees Only"
}

// convert peels off the largest applicable Indian magnitude unit and recurses
// on the remainder. Base case 0-19 is a direct lookup; 20-99 composes
// tens + ones.
func convert(n int64) string {
	switch {
	case n >= 10000000:
		return convert(n/10000000) + "Crore " + convert(n%10000000)
	case n >= 100000:
		return convert(n/100000) + "Lakh " + convert(n%100000)
	case n >= 1000:
		return convert(n/1000) + "Thousand " + convert(n%1000)
	case n >= 100:
		w := convert(n/100) + "Hundred "
		if rem := n % 100; rem > 0 {
			w += "and " + convert(rem)
		}
		return w
	case n >= 20:
		return tens[n/10] + " " + convert(n%10)
	case n > 0:
		return ones[n] + " "
	default:
		return ""
	}
}
