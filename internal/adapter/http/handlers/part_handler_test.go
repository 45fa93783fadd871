package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecstock/internal/adapter/http/handlers/mocks"
	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPartHandler_AdjustPartQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/parts/:id/quantity", h.AdjustPartQuantity)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts/part-1/quantity", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/parts/:id/quantity", h.AdjustPartQuantity)

		uc.EXPECT().AdjustQuantity(gomock.Any(), "part-1", -10).
			Return(entities.Part{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts/part-1/quantity", bytes.NewBufferString(`{"delta":-10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/parts/:id/quantity", h.AdjustPartQuantity)

		uc.EXPECT().AdjustQuantity(gomock.Any(), "part-1", 5).
			Return(entities.Part{ID: "part-1", Name: "Filtro de óleo", Quantity: 15}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/parts/part-1/quantity", bytes.NewBufferString(`{"delta":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["quantity"] != float64(15) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPartHandler_GetPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPartUseCase(ctrl)
	h := NewPartHandler(uc)

	r := gin.New()
	r.GET("/v1/parts/:id", h.GetPart)

	uc.EXPECT().GetByID(gomock.Any(), "part-x").Return(entities.Part{}, usecase.ErrPartNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/parts/part-x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
