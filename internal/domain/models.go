package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Party represents a customer or vendor. Its state of supply drives the
// intra- vs inter-state tax split; everything else is opaque to the engine.
type Party struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Kind          PartyKind `db:"kind" json:"kind"`
	Name          string    `db:"name" json:"name"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	StateOfSupply string    `db:"state_of_supply" json:"state_of_supply"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"phone" json:"phone"`
	Address       string    `db:"address" json:"address"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// DocumentItem is a single line on a financial document. RateLabel preserves
// the rate exactly as entered ("GST @ 18%", "None", "12"); TaxRatePercent is
// the resolved numeric rate.
type DocumentItem struct {
	ID              uuid.UUID `db:"id" json:"id"`
	DocumentID      uuid.UUID `db:"document_id" json:"document_id"`
	Position        int       `db:"position" json:"position"`
	Description     string    `db:"description" json:"description"`
	HSNCode         string    `db:"hsn_code" json:"hsn_code"`
	Quantity        float64   `db:"quantity" json:"quantity"`
	Unit            string    `db:"unit" json:"unit"`
	UnitRate        float64   `db:"unit_rate" json:"unit_rate"`
	DiscountPercent float64   `db:"discount_percent" json:"discount_percent"`
	RateLabel       string    `db:"rate_label" json:"rate_label"`
	TaxRatePercent  float64   `db:"tax_rate_percent" json:"tax_rate_percent"`
	RateResolved    bool      `db:"rate_resolved" json:"rate_resolved"`
}

// Document is one financial document (invoice, purchase bill, expense, or
// quotation). The totals columns are derived by the engine and always
// re-derivable from the input fields; they are stored for listing and print.
type Document struct {
	ID      uuid.UUID  `db:"id" json:"id"`
	DocType DocType    `db:"doc_type" json:"doc_type"`
	Number  string     `db:"number" json:"number"`
	Status  DocStatus  `db:"status" json:"status"`
	PartyID uuid.UUID  `db:"party_id" json:"party_id"`
	DocDate time.Time  `db:"doc_date" json:"doc_date"`
	DueDate *time.Time `db:"due_date" json:"due_date,omitempty"`
	Notes   string     `db:"notes" json:"notes"`

	// Engine inputs.
	DiscountMode    DiscountMode `db:"discount_mode" json:"discount_mode"`
	DiscountValue   float64      `db:"discount_value" json:"discount_value"`
	Surcharge       float64      `db:"surcharge" json:"surcharge"`
	TaxMode         TaxMode      `db:"tax_mode" json:"tax_mode"`
	RoundOff        bool         `db:"round_off" json:"round_off"`
	BuyerState      string       `db:"buyer_state" json:"buyer_state"`
	AggregateAmount float64      `db:"aggregate_amount" json:"aggregate_amount"`
	AggregateRate   float64      `db:"aggregate_rate" json:"aggregate_rate"`

	// Derived totals.
	Subtotal             float64 `db:"subtotal" json:"subtotal"`
	ItemDiscountTotal    float64 `db:"item_discount_total" json:"item_discount_total"`
	TaxableAfterDiscount float64 `db:"taxable_after_discount" json:"taxable_after_discount"`
	TaxAmount            float64 `db:"tax_amount" json:"tax_amount"`
	CGST                 float64 `db:"cgst" json:"cgst"`
	SGST                 float64 `db:"sgst" json:"sgst"`
	IGST                 float64 `db:"igst" json:"igst"`
	AdditionalCharges    float64 `db:"additional_charges" json:"additional_charges"`
	PreRoundTotal        float64 `db:"pre_round_total" json:"pre_round_total"`
	RoundOffDelta        float64 `db:"round_off_delta" json:"round_off_delta"`
	GrandTotal           float64 `db:"grand_total" json:"grand_total"`
	AmountInWords        string  `db:"amount_in_words" json:"amount_in_words"`

	// Settlement state. AmountReceived only moves through validated payment
	// application; PaymentStatus is always re-derived from it.
	AmountReceived decimal.Decimal `db:"amount_received" json:"amount_received"`
	PaymentStatus  PaymentStatus   `db:"payment_status" json:"payment_status"`

	// Optional receipt attachment (expense documents).
	ReceiptKey string `db:"receipt_key" json:"receipt_key,omitempty"`

	Items []DocumentItem `db:"-" json:"items"`

	PostedAt  *time.Time `db:"posted_at" json:"posted_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Payment is an immutable record of money received against a document.
// Corrections are new offsetting records, never edits.
type Payment struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	DocumentID uuid.UUID       `db:"document_id" json:"document_id"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Method     string          `db:"method" json:"method"`
	Reference  string          `db:"reference" json:"reference"`
	PaidAt     time.Time       `db:"paid_at" json:"paid_at"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// SettlementResult is the outcome of a successful payment application.
type SettlementResult struct {
	AmountReceived decimal.Decimal `json:"amount_received"`
	BalanceDue     decimal.Decimal `json:"balance_due"`
	Status         PaymentStatus   `json:"status"`
}

// GSTSummaryRow aggregates posted-document tax totals per document type for
// a reporting period.
type GSTSummaryRow struct {
	DocType       DocType `db:"doc_type" json:"doc_type"`
	DocCount      int     `db:"doc_count" json:"doc_count"`
	TaxableAmount float64 `db:"taxable_amount" json:"taxable_amount"`
	CGST          float64 `db:"cgst" json:"cgst"`
	SGST          float64 `db:"sgst" json:"sgst"`
	IGST          float64 `db:"igst" json:"igst"`
	GrandTotal    float64 `db:"grand_total" json:"grand_total"`
}

// SellerProfile identifies the business issuing documents. It is explicit
// configuration, never a baked-in constant.
type SellerProfile struct {
	Name          string `json:"name"`
	GSTIN         string `json:"gstin"`
	StateOfSupply string `json:"state_of_supply"`
	Address       string `json:"address"`
	Email         string `json:"email"`
}
