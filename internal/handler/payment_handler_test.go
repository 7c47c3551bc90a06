package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func newPaymentHandler() (*handler.PaymentHandler, *mocks.MockPaymentService) {
	mockSvc := new(mocks.MockPaymentService)
	return handler.NewPaymentHandler(mockSvc), mockSvc
}

func TestPaymentHandler_Apply_Success(t *testing.T) {
	h, mockSvc := newPaymentHandler()

	docID := uuid.New()
	payment := &domain.Payment{
		ID:         uuid.New(),
		DocumentID: docID,
		Amount:     decimal.RequireFromString("200"),
		Method:     "upi",
	}
	result := &domain.SettlementResult{
		AmountReceived: decimal.RequireFromString("200"),
		BalanceDue:     decimal.RequireFromString("549"),
		Status:         domain.PaymentStatusPartial,
	}
	mockSvc.On("Apply", mock.Anything, mock.AnythingOfType("*service.ApplyPaymentInput")).
		Return(payment, result, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/payments",
		map[string]interface{}{"amount": "200", "method": "upi", "reference": "UPI-1"})
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}

	h.Apply(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	input := mockSvc.Calls[0].Arguments.Get(1).(*service.ApplyPaymentInput)
	assert.Equal(t, docID, input.DocumentID)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("200")))

	var resp struct {
		Data struct {
			Settlement domain.SettlementResult `json:"settlement"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PaymentStatusPartial, resp.Data.Settlement.Status)
}

func TestPaymentHandler_Apply_Overpayment(t *testing.T) {
	h, mockSvc := newPaymentHandler()

	docID := uuid.New()
	mockSvc.On("Apply", mock.Anything, mock.Anything).Return(nil, nil, domain.ErrPaymentExceedsDue)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/payments",
		map[string]interface{}{"amount": "9999"})
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}

	h.Apply(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PAYMENT_EXCEEDS_DUE", resp.Error.Code)
}

func TestPaymentHandler_Apply_QuotationRejected(t *testing.T) {
	h, mockSvc := newPaymentHandler()

	docID := uuid.New()
	mockSvc.On("Apply", mock.Anything, mock.Anything).Return(nil, nil, domain.ErrDocumentNotSettleable)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/payments",
		map[string]interface{}{"amount": "10"})
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}

	h.Apply(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPaymentHandler_List(t *testing.T) {
	h, mockSvc := newPaymentHandler()

	docID := uuid.New()
	mockSvc.On("ListByDocument", mock.Anything, docID).Return([]domain.Payment{
		{ID: uuid.New(), DocumentID: docID, Amount: decimal.RequireFromString("100")},
	}, nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/v1/documents/"+docID.String()+"/payments", nil)
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}

	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
