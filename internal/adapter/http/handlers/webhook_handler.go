package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"uniformes_store/internal/adapter/http/dto/request"
	"uniformes_store/internal/usecase"
	"uniformes_store/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago payment notifications.
//
// Response policy (retry behavior is driven by the status code):
//   - 200 for anything permanently resolved: non-payment events, unknown
//     references, duplicate deliveries, and invoice failures after a committed
//     approval (a retry would be a guarded no-op).
//   - 401 for invalid signatures.
//   - 5xx only for transient failures (store or gateway lookup) so Mercado Pago
//     retries the delivery.

type WebhookHandler struct {
	confirmation usecase.IPaymentConfirmationUseCase
	gateway      interfaces.IPaymentGateway
}

func NewWebhookHandler(confirmation usecase.IPaymentConfirmationUseCase, gateway interfaces.IPaymentGateway) *WebhookHandler {
	return &WebhookHandler{confirmation: confirmation, gateway: gateway}
}

// HandleMercadoPago godoc
// @Summary      Mercado Pago payment webhook
// @Tags         webhooks
// @Accept       json
// @Success      200
// @Failure      401 {object} pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	var notif request.MercadoPagoWebhookNotification
	if err := json.Unmarshal(raw, &notif); err != nil {
		log.Printf("[webhook][handler] invalid json payload err=%v", err)
		// Malformed bodies are permanently unresolvable; do not provoke retries.
		c.Status(http.StatusOK)
		return
	}
	log.Printf("[webhook][handler] received type=%s action=%s data_id=%s", notif.Type, notif.Action, notif.Data.ID)

	if secret := os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"); secret != "" {
		if !verifySignature(c, notif.Data.ID, secret) {
			log.Printf("[webhook][handler] signature verification failed data_id=%s", notif.Data.ID)
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_SIGNATURE", "message": "Invalid webhook signature"})
			return
		}
	}

	if !notif.IsPaymentEvent() || notif.Data.ID == "" {
		log.Printf("[webhook][handler] ignoring non-payment event type=%s", notif.Type)
		c.Status(http.StatusOK)
		return
	}

	details, err := h.gateway.GetPayment(c.Request.Context(), notif.Data.ID)
	if err != nil {
		log.Printf("[webhook][handler] gateway lookup failed data_id=%s err=%v", notif.Data.ID, err)
		c.Status(http.StatusBadGateway)
		return
	}

	switch details.Status {
	case interfaces.GatewayStatusApproved:
		err = h.confirmation.ConfirmPayment(c.Request.Context(), details.ExternalReference, details.ExternalID, details.PaymentMethodID)
		if err != nil {
			if errors.Is(err, usecase.ErrInvoiceGeneration) {
				// Approval committed; retrying the webhook cannot help.
				log.Printf("[webhook][handler] ERROR invoice generation failed after approval external_reference=%s err=%v", details.ExternalReference, err)
				c.Status(http.StatusOK)
				return
			}
			log.Printf("[webhook][handler] confirmation failed external_reference=%s err=%v", details.ExternalReference, err)
			c.Status(http.StatusInternalServerError)
			return
		}
	case interfaces.GatewayStatusRejected, interfaces.GatewayStatusCancelled:
		if err := h.confirmation.RejectPayment(c.Request.Context(), details.ExternalReference, details.ExternalID); err != nil {
			log.Printf("[webhook][handler] rejection handling failed external_reference=%s err=%v", details.ExternalReference, err)
			c.Status(http.StatusInternalServerError)
			return
		}
	default:
		log.Printf("[webhook][handler] no action for status=%s data_id=%s", details.Status, notif.Data.ID)
	}

	c.Status(http.StatusOK)
}

// verifySignature checks the Mercado Pago x-signature header:
// "ts=<unix>,v1=<hex hmac>" where the HMAC-SHA256 manifest is
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" keyed with the webhook secret.
func verifySignature(c *gin.Context, dataID, secret string) bool {
	signature := c.GetHeader("x-signature")
	requestID := c.GetHeader("x-request-id")
	if signature == "" {
		return false
	}

	var ts, v1 string
	for _, part := range strings.Split(signature, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}
	if ts == "" || v1 == "" {
		return false
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(v1))
}
