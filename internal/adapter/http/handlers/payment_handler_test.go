package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniformes_store/internal/adapter/http/handlers/mocks"
	"uniformes_store/internal/domain/entities"
	"uniformes_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/pix", h.CreatePixPayment)
	r.POST("/v1/payments/card", h.CreateCardPayment)
	r.GET("/v1/payments/:id", h.GetPayment)
	r.POST("/v1/payments/:id/cancel", h.CancelPayment)
	r.POST("/v1/payments/:id/refund", h.RefundPayment)
	r.POST("/v1/payments/:id/invoice", h.ReissueInvoice)
	return r
}

func TestPaymentHandler_CreatePixPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().CreatePixCheckout(gomock.Any(), usecase.PixCheckoutInput{
			CustomerID: "cust-1",
			OrderIDs:   []string{"order-1"},
			TotalCents: 15000,
		}).Return(usecase.PixCheckoutResult{
			Intent: entities.PaymentIntent{
				ID:         "intent-1",
				CustomerID: "cust-1",
				OrderIDs:   []string{"order-1"},
				TotalCents: 15000,
				Method:     entities.PaymentMethodPix,
				Status:     entities.PaymentIntentStatusPendente,
			},
			QRCode:    "qr-data",
			TicketURL: "https://mp/ticket",
		}, nil)

		body := `{"customer_id":"cust-1","order_ids":["order-1"],"total_cents":15000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "intent-1" || resp["qr_code"] != "qr-data" {
			t.Fatalf("unexpected response: %v", resp)
		}
		if resp["status"] != string(entities.PaymentIntentStatusPendente) {
			t.Fatalf("expected pendente, got %v", resp["status"])
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().CreatePixCheckout(gomock.Any(), gomock.Any()).Return(usecase.PixCheckoutResult{}, usecase.ErrAmountMismatch)

		body := `{"customer_id":"cust-1","order_ids":["order-1"],"total_cents":99}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().CreatePixCheckout(gomock.Any(), gomock.Any()).Return(usecase.PixCheckoutResult{}, usecase.ErrCustomerNotFound)

		body := `{"customer_id":"ghost","order_ids":["order-1"],"total_cents":15000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CreateCardPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns final state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().CreateCardCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.CardCheckoutInput) (entities.PaymentIntent, error) {
			if in.CardToken != "tok-abc" || in.Installments != 3 {
				t.Fatalf("unexpected card input: %+v", in)
			}
			return entities.PaymentIntent{
				ID:     "intent-2",
				Method: entities.PaymentMethodCartao,
				Status: entities.PaymentIntentStatusAprovado,
			}, nil
		})

		body := `{"customer_id":"cust-1","order_ids":["order-1"],"total_cents":15000,"card_token":"tok-abc","payment_method_id":"master","installments":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/card", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != string(entities.PaymentIntentStatusAprovado) {
			t.Fatalf("expected aprovado, got %v", resp["status"])
		}
	})

	t.Run("missing card token fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		body := `{"customer_id":"cust-1","order_ids":["order-1"],"total_cents":15000,"installments":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/card", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().GetByID(gomock.Any(), "intent-1").Return(entities.PaymentIntent{
			ID:     "intent-1",
			Status: entities.PaymentIntentStatusAprovado,
			Invoice: entities.InvoiceMetadata{
				Number:      "NF-2026-000001",
				DocumentURL: "https://docs/NF-2026-000001.html",
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/intent-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		invoice, ok := resp["invoice"].(map[string]any)
		if !ok || invoice["number"] != "NF-2026-000001" {
			t.Fatalf("expected invoice metadata in response, got %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.PaymentIntent{}, usecase.ErrPaymentIntentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CancelRefundReissue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().Cancel(gomock.Any(), "intent-1").Return(entities.PaymentIntent{}, usecase.ErrPaymentNotPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("refund success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		checkout.EXPECT().Refund(gomock.Any(), "intent-1").Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusEstornado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent-1/refund", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reissue requires approved payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		confirmation.EXPECT().ReissueInvoice(gomock.Any(), "intent-1").Return(entities.PaymentIntent{}, usecase.ErrPaymentNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reissue unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		confirmation := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(checkout, confirmation))

		confirmation.EXPECT().ReissueInvoice(gomock.Any(), "intent-1").Return(entities.PaymentIntent{}, errors.New("wrapped: "+usecase.ErrInvoiceGeneration.Error()))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/intent-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// A plain error (not wrapping the sentinel) maps to 500.
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
