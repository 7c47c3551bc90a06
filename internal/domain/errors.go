package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrPartyNotFound         = errors.New("party not found")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentPosted        = errors.New("document is posted and cannot be modified")
	ErrDocumentNotPosted     = errors.New("document is not posted")
	ErrDocumentNotSettleable = errors.New("document type does not accept payments")
	ErrInvalidDocType        = errors.New("invalid document type")
	ErrInvalidLineItem       = errors.New("line item has negative quantity or rate")
	ErrInvalidDiscount       = errors.New("discount is negative or exceeds 100 percent")
	ErrInvalidTaxRate        = errors.New("tax rate is negative or exceeds 100 percent")
	ErrInvalidPaymentAmount  = errors.New("payment amount must be positive")
	ErrPaymentExceedsDue     = errors.New("payment amount exceeds balance due")
	ErrDuplicateDocNumber    = errors.New("document number already exists")
	ErrAttachmentTooLarge    = errors.New("attachment exceeds maximum allowed size")
	ErrUnsupportedFileType   = errors.New("unsupported attachment file type")
	ErrUploadFailed          = errors.New("attachment upload to storage failed")
)
