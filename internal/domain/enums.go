package domain

// DocType distinguishes the financial document variants.
type DocType string

const (
	DocTypeInvoice   DocType = "invoice"
	DocTypePurchase  DocType = "purchase"
	DocTypeExpense   DocType = "expense"
	DocTypeQuotation DocType = "quotation"
)

// ValidDocTypes maps the accepted document type strings.
var ValidDocTypes = map[DocType]bool{
	DocTypeInvoice:   true,
	DocTypePurchase:  true,
	DocTypeExpense:   true,
	DocTypeQuotation: true,
}

// Settleable reports whether payments can be applied against this document
// type. Quotations carry no payment obligation and never settle.
func (t DocType) Settleable() bool {
	return t == DocTypeInvoice || t == DocTypePurchase || t == DocTypeExpense
}

// DocStatus represents the document lifecycle.
type DocStatus string

const (
	DocStatusDraft  DocStatus = "draft"
	DocStatusPosted DocStatus = "posted"
)

// PaymentStatus is derived from amount received against the grand total.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// DiscountMode selects how the document-level discount value is interpreted.
type DiscountMode string

const (
	DiscountModePercent DiscountMode = "percent"
	DiscountModeFlat    DiscountMode = "flat"
)

// TaxMode governs aggregate-amount documents (expenses) where no per-line
// breakdown exists.
type TaxMode string

const (
	TaxModeExclusive TaxMode = "exclusive"
	TaxModeInclusive TaxMode = "inclusive"
)

// PartyKind distinguishes customers from vendors.
type PartyKind string

const (
	PartyKindCustomer PartyKind = "customer"
	PartyKindVendor   PartyKind = "vendor"
)
