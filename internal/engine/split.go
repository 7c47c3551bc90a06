package engine

import "strings"

// TaxSplit allocates a tax amount into jurisdiction buckets. Exactly one
// family is non-zero: CGST+SGST for intra-state, IGST for inter-state.
type TaxSplit struct {
	CGST float64
	SGST float64
	IGST float64
}

// SplitJurisdiction compares buyer and seller states (trimmed,
// case-insensitive) to decide intra- vs inter-state treatment. When either
// state is unknown the split defaults to intra-state; see the open question
// in DESIGN.md.
func SplitJurisdiction(taxAmount float64, buyerState, sellerState string) TaxSplit {
	buyer := strings.TrimSpace(buyerState)
	seller := strings.TrimSpace(sellerState)

	intra := buyer == "" || seller == "" || strings.EqualFold(buyer, seller)
	if intra {
		half := taxAmount / 2
		return TaxSplit{CGST: half, SGST: half}
	}
	return TaxSplit{IGST: taxAmount}
}
