package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecstock/internal/adapter/http/handlers/mocks"
	"mecstock/internal/domain/entities"
	"mecstock/internal/domain/payments"
	"mecstock/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/process", h.ProcessPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/process", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/process", h.ProcessPayment)

		uc.EXPECT().Process(gomock.Any(), "os-1", payments.Method("boleto"), 100.0, gomock.Any()).
			Return(payments.Outcome{}, entities.Payment{}, payments.ErrUnsupportedMethod)

		body := `{"order_id":"os-1","method":"boleto","amount":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/process", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "UNSUPPORTED_METHOD" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/process", h.ProcessPayment)

		uc.EXPECT().Process(gomock.Any(), "os-x", payments.MethodCash, 100.0, gomock.Any()).
			Return(payments.Outcome{}, entities.Payment{}, usecase.ErrOrderNotFound)

		body := `{"order_id":"os-x","method":"cash","amount":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/process", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/process", h.ProcessPayment)

		outcome := payments.Outcome{Method: payments.MethodPix, Amount: 250.5, Status: "success", TransactionReference: "PIX-abc"}
		payment := entities.Payment{ID: "pay-1", OrderID: "os-1", Status: entities.PaymentStatusPago}
		uc.EXPECT().Process(gomock.Any(), "os-1", payments.MethodPix, 250.5, payments.Params{"payer_key": "k"}).
			Return(outcome, payment, nil)

		body := `{"order_id":"os-1","method":"pix","amount":250.5,"params":{"payer_key":"k"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/process", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "success" || resp["transaction_reference"] != "PIX-abc" || resp["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:id", h.GetPayment)

		uc.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:id", h.GetPayment)

		uc.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", OrderID: "os-1", TotalAmount: 500, FinalAmount: 500, Method: "cash", Status: entities.PaymentStatusPago}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "pay-1" || resp["status"] != "Pago" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetOrderPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/service-orders/:id/payment", h.GetOrderPayment)

	uc.EXPECT().GetByOrderID(gomock.Any(), "os-1").
		Return(entities.Payment{ID: "pay-1", OrderID: "os-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1/payment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["order_id"] != "os-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
