package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
)

// DocumentHandler handles financial document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create handles POST /api/v1/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	var req service.DocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed document payload")
		return
	}

	doc, warnings, err := h.documentService.CreateDraft(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, doc, warnings)
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	filter, ok := documentFilter(c)
	if !ok {
		return
	}

	docs, total, err := h.documentService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, docs, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// Update handles PUT /api/v1/documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req service.DocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed document payload")
		return
	}

	doc, warnings, err := h.documentService.UpdateDraft(c.Request.Context(), id, &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOKWithWarnings(c, doc, warnings)
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.documentService.DeleteDraft(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// Post handles POST /api/v1/documents/:id/post
func (h *DocumentHandler) Post(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.Post(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Preview handles POST /api/v1/documents/preview. It derives totals from the
// payload without persisting anything.
func (h *DocumentHandler) Preview(c *gin.Context) {
	var req service.DocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed document payload")
		return
	}

	totals, warnings, err := h.documentService.PreviewTotals(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOKWithWarnings(c, totals, warnings)
}

// AttachReceipt handles POST /api/v1/documents/:id/receipt (multipart upload).
func (h *DocumentHandler) AttachReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart field 'file' is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}
	defer func() { _ = f.Close() }()

	doc, err := h.documentService.AttachReceipt(c.Request.Context(), &service.AttachReceiptInput{
		DocumentID:  id,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        f,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// ReceiptURL handles GET /api/v1/documents/:id/receipt
func (h *DocumentHandler) ReceiptURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	url, err := h.documentService.ReceiptURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

// documentFilter parses the shared listing/report query params. On a parse
// failure the error response is already written and ok is false.
func documentFilter(c *gin.Context) (port.DocumentFilter, bool) {
	var filter port.DocumentFilter
	filter.Offset, filter.Limit = pagination(c)

	if v := c.Query("doc_type"); v != "" {
		dt := domain.DocType(v)
		if !domain.ValidDocTypes[dt] {
			RespondError(c, http.StatusBadRequest, "INVALID_DOC_TYPE", "unknown doc_type")
			return filter, false
		}
		filter.DocType = &dt
	}
	if v := c.Query("status"); v != "" {
		st := domain.DocStatus(v)
		if st != domain.DocStatusDraft && st != domain.DocStatusPosted {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status must be 'draft' or 'posted'")
			return filter, false
		}
		filter.Status = &st
	}
	if v := c.Query("payment_status"); v != "" {
		ps := domain.PaymentStatus(v)
		if ps != domain.PaymentStatusUnpaid && ps != domain.PaymentStatusPartial && ps != domain.PaymentStatusPaid {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "payment_status must be 'unpaid', 'partial', or 'paid'")
			return filter, false
		}
		filter.PaymentStatus = &ps
	}
	if v := c.Query("party_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party_id")
			return filter, false
		}
		filter.PartyID = &id
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from must be YYYY-MM-DD")
			return filter, false
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to must be YYYY-MM-DD")
			return filter, false
		}
		filter.To = &t
	}
	return filter, true
}
