package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// PartyHandler handles customer and vendor endpoints.
type PartyHandler struct {
	partyService service.PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

type partyRequest struct {
	Kind          domain.PartyKind `json:"kind"`
	Name          string           `json:"name" binding:"required"`
	GSTIN         string           `json:"gstin"`
	StateOfSupply string           `json:"state_of_supply"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
}

// Create handles POST /api/v1/parties
func (h *PartyHandler) Create(c *gin.Context) {
	var req partyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	party, err := h.partyService.Create(c.Request.Context(), &service.CreatePartyInput{
		Kind:          req.Kind,
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		StateOfSupply: req.StateOfSupply,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, party, nil)
}

// GetByID handles GET /api/v1/parties/:id
func (h *PartyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party ID")
		return
	}

	party, err := h.partyService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, party)
}

// List handles GET /api/v1/parties
func (h *PartyHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	var kind *domain.PartyKind
	if k := c.Query("kind"); k != "" {
		pk := domain.PartyKind(k)
		if pk != domain.PartyKindCustomer && pk != domain.PartyKindVendor {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind must be 'customer' or 'vendor'")
			return
		}
		kind = &pk
	}

	parties, total, err := h.partyService.List(c.Request.Context(), kind, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, parties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/parties/:id
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party ID")
		return
	}

	var req partyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	party, err := h.partyService.Update(c.Request.Context(), &service.UpdatePartyInput{
		ID:            id,
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		StateOfSupply: req.StateOfSupply,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, party)
}

// Delete handles DELETE /api/v1/parties/:id
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party ID")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// pagination reads offset/limit query params with sane bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
