package engine

import "gstbill/internal/domain"

// Discount is the document-level discount, applied once after line items are
// summed.
type Discount struct {
	Mode  domain.DiscountMode
	Value float64
}

// Totals is the engine's output. It is always re-derivable from the inputs
// and never authoritative on its own.
//
// Invariants: GrandTotal = TaxableAfterDiscount + TaxAmount +
// AdditionalCharges + RoundOffDelta, and CGST + SGST + IGST = TaxAmount with
// exactly one jurisdiction family non-zero.
type Totals struct {
	Subtotal             float64 `json:"subtotal"`
	ItemDiscountTotal    float64 `json:"item_discount_total"`
	TaxableAfterDiscount float64 `json:"taxable_after_discount"`
	TaxAmount            float64 `json:"tax_amount"`
	CGST                 float64 `json:"cgst"`
	SGST                 float64 `json:"sgst"`
	IGST                 float64 `json:"igst"`
	AdditionalCharges    float64 `json:"additional_charges"`
	PreRoundTotal        float64 `json:"pre_round_total"`
	RoundOffDelta        float64 `json:"round_off_delta"`
	GrandTotal           float64 `json:"grand_total"`
}

// DocumentInput is a line-item document descriptor (invoices, purchase bills,
// quotations).
type DocumentInput struct {
	Items       []LineItem
	Discount    Discount
	Surcharge   float64
	RoundOff    bool
	BuyerState  string
	SellerState string
}

// AggregateInput is a single-amount descriptor used by expense documents,
// where only one aggregate figure and one rate exist.
type AggregateInput struct {
	Amount      float64
	RatePercent float64
	Mode        domain.TaxMode
	RoundOff    bool
	BuyerState  string
	SellerState string
}

// ComputeDocument runs the full pipeline over a line-item document: line
// valuation, document discount, tax proration, jurisdiction split, surcharge,
// round-off.
func ComputeDocument(in DocumentInput) (Totals, error) {
	var t Totals

	var taxableSum, itemTaxSum float64
	for _, it := range in.Items {
		if err := ValidateLine(it); err != nil {
			return Totals{}, err
		}
		lv := ValueLine(it)
		t.Subtotal += lv.BaseAmount
		t.ItemDiscountTotal += lv.DiscountAmount
		taxableSum += lv.TaxableAmount
		itemTaxSum += lv.TaxAmount
	}

	docDiscount, err := documentDiscountValue(in.Discount, taxableSum)
	if err != nil {
		return Totals{}, err
	}
	t.TaxableAfterDiscount = taxableSum - docDiscount

	// Tax proration: line-level tax assumed no document discount. Scaling it
	// by the reduced taxable base preserves the effective tax rate instead of
	// letting a flat discount shave the tax share disproportionately.
	ratio := 1.0
	if taxableSum != 0 {
		ratio = t.TaxableAfterDiscount / taxableSum
	}
	t.TaxAmount = itemTaxSum * ratio

	split := SplitJurisdiction(t.TaxAmount, in.BuyerState, in.SellerState)
	t.CGST, t.SGST, t.IGST = split.CGST, split.SGST, split.IGST

	// Surcharge is non-taxable and lands after proration.
	if in.Surcharge < 0 {
		return Totals{}, domain.ErrInvalidLineItem
	}
	t.AdditionalCharges = in.Surcharge
	t.PreRoundTotal = t.TaxableAfterDiscount + t.TaxAmount + t.AdditionalCharges
	t.GrandTotal, t.RoundOffDelta = RoundTotal(t.PreRoundTotal, in.RoundOff)

	return t, nil
}

// ComputeAggregate handles the expense-style document: one aggregate amount,
// one rate, no line breakdown. Exclusive mode adds tax on top of the amount;
// Inclusive mode extracts tax already contained in it.
func ComputeAggregate(in AggregateInput) (Totals, error) {
	if in.Amount < 0 {
		return Totals{}, domain.ErrInvalidLineItem
	}
	if in.RatePercent < 0 || in.RatePercent > 100 {
		return Totals{}, domain.ErrInvalidTaxRate
	}

	var t Totals
	switch in.Mode {
	case domain.TaxModeInclusive:
		t.TaxableAfterDiscount = in.Amount / (1 + in.RatePercent/100)
		t.TaxAmount = in.Amount - t.TaxableAfterDiscount
		t.PreRoundTotal = in.Amount
	default: // exclusive
		t.TaxableAfterDiscount = in.Amount
		t.TaxAmount = in.Amount * in.RatePercent / 100
		t.PreRoundTotal = in.Amount + t.TaxAmount
	}
	t.Subtotal = t.TaxableAfterDiscount

	split := SplitJurisdiction(t.TaxAmount, in.BuyerState, in.SellerState)
	t.CGST, t.SGST, t.IGST = split.CGST, split.SGST, split.IGST

	t.GrandTotal, t.RoundOffDelta = RoundTotal(t.PreRoundTotal, in.RoundOff)
	return t, nil
}

// documentDiscountValue resolves the document discount to an absolute amount.
// Percent mode applies to the aggregated taxable sum; flat mode is clamped so
// a discount can never invert the document to a negative value.
func documentDiscountValue(d Discount, taxableSum float64) (float64, error) {
	if d.Value < 0 {
		return 0, domain.ErrInvalidDiscount
	}
	switch d.Mode {
	case domain.DiscountModeFlat:
		if d.Value > taxableSum {
			return taxableSum, nil
		}
		return d.Value, nil
	case domain.DiscountModePercent, "":
		if d.Value > 100 {
			return 0, domain.ErrInvalidDiscount
		}
		return taxableSum * d.Value / 100, nil
	default:
		return 0, domain.ErrInvalidDiscount
	}
}
