package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
	Error    *APIError   `json:"error,omitempty"`
	Meta     *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondOKWithWarnings sends a 200 success response carrying non-fatal
// warnings (unresolved tax rates and the like).
func RespondOKWithWarnings(c *gin.Context, data interface{}, warnings []string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Warnings: warnings})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}, warnings []string) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Warnings: warnings})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound, "PARTY_NOT_FOUND", "party not found"
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDocumentPosted):
		return http.StatusConflict, "DOCUMENT_POSTED", "document is posted and cannot be modified"
	case errors.Is(err, domain.ErrDocumentNotPosted):
		return http.StatusConflict, "DOCUMENT_NOT_POSTED", "document must be posted first"
	case errors.Is(err, domain.ErrDocumentNotSettleable):
		return http.StatusConflict, "DOCUMENT_NOT_SETTLEABLE", "this document type does not accept payments"
	case errors.Is(err, domain.ErrDuplicateDocNumber):
		return http.StatusConflict, "DUPLICATE_NUMBER", "document number already exists for this type"
	case errors.Is(err, domain.ErrInvalidDocType):
		return http.StatusBadRequest, "INVALID_DOC_TYPE", "doc_type must be invoice, purchase, expense, or quotation"
	case errors.Is(err, domain.ErrInvalidLineItem):
		return http.StatusBadRequest, "INVALID_LINE_ITEM", "line items require non-negative quantity and rate"
	case errors.Is(err, domain.ErrInvalidDiscount):
		return http.StatusBadRequest, "INVALID_DISCOUNT", "discount is negative or exceeds 100 percent"
	case errors.Is(err, domain.ErrInvalidTaxRate):
		return http.StatusBadRequest, "INVALID_TAX_RATE", "tax rate must be between 0 and 100"
	case errors.Is(err, domain.ErrInvalidPaymentAmount):
		return http.StatusBadRequest, "INVALID_PAYMENT_AMOUNT", "payment amount must be positive"
	case errors.Is(err, domain.ErrPaymentExceedsDue):
		return http.StatusUnprocessableEntity, "PAYMENT_EXCEEDS_DUE", "payment amount exceeds balance due"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_REQUEST", err.Error()
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported receipt type; allowed: pdf, jpg, png, webp"
	case errors.Is(err, domain.ErrAttachmentTooLarge):
		return http.StatusRequestEntityTooLarge, "ATTACHMENT_TOO_LARGE", "receipt exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "receipt upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
