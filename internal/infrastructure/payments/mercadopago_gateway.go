package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"uniformes_store/internal/domain/entities"
	"uniformes_store/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const defaultGatewayTimeout = 15 * time.Second

// MercadoPagoGateway translates checkout intents into Mercado Pago requests and
// normalizes the responses. Every call sets external_reference to the internal
// intent id and rejects responses whose echoed reference does not match.

type MercadoPagoGateway struct {
	client          payment.Client
	notificationURL string
	timeout         time.Duration
	mockMode        bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	notificationURL := ""
	if base := strings.TrimRight(os.Getenv("WEBHOOK_BASE_URL"), "/"); base != "" {
		notificationURL = base + "/v1/webhooks/mercadopago"
	}

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, timeout: defaultGatewayTimeout}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:          payment.NewClient(cfg),
		notificationURL: notificationURL,
		timeout:         defaultGatewayTimeout,
	}, nil
}

func (g *MercadoPagoGateway) CreatePixIntent(ctx context.Context, intentID string, payer entities.Customer, amountCents int64, description string) (interfaces.PixIntentResult, error) {
	if amountCents <= 0 {
		return interfaces.PixIntentResult{}, fmt.Errorf("pix amount must be positive, got %d", amountCents)
	}
	if g != nil && g.mockMode {
		return g.mockPixIntent(intentID)
	}
	if g == nil || g.client == nil {
		return interfaces.PixIntentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] pix create start external_reference=%s amount_cents=%d", intentID, amountCents)

	req := payment.Request{
		TransactionAmount: centsToAmount(amountCents),
		Description:       description,
		PaymentMethodID:   "pix",
		ExternalReference: intentID,
		NotificationURL:   g.notificationURL,
		Payer: &payment.PayerRequest{
			Email:     payer.Email,
			FirstName: payer.Name,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] pix sdk create failed external_reference=%s err=%v", intentID, err)
		return interfaces.PixIntentResult{}, err
	}
	if resp.ExternalReference != intentID {
		log.Printf("[payment][gateway] pix reference mismatch sent=%s got=%s", intentID, resp.ExternalReference)
		return interfaces.PixIntentResult{}, interfaces.ErrGatewayReferenceMismatch
	}
	// A fresh PIX intent must start pending; anything else is a creation failure.
	if resp.Status != interfaces.GatewayStatusPending {
		log.Printf("[payment][gateway] pix unexpected initial status external_reference=%s status=%s", intentID, resp.Status)
		return interfaces.PixIntentResult{}, fmt.Errorf("%w: %s", interfaces.ErrGatewayUnexpectedStatus, resp.Status)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PixIntentResult{}, err
	}
	log.Printf("[payment][gateway] pix create success external_reference=%s provider_payment_id=%d", intentID, resp.ID)

	tx := resp.PointOfInteraction.TransactionData
	return interfaces.PixIntentResult{
		ExternalID:   strconv.Itoa(resp.ID),
		QRCode:       tx.QRCode,
		QRCodeBase64: tx.QRCodeBase64,
		TicketURL:    tx.TicketURL,
		Raw:          raw,
	}, nil
}

func (g *MercadoPagoGateway) CreateCardCharge(ctx context.Context, intentID string, payer entities.Customer, amountCents int64, card interfaces.CardChargeRequest) (interfaces.CardChargeResult, error) {
	if amountCents <= 0 {
		return interfaces.CardChargeResult{}, fmt.Errorf("card amount must be positive, got %d", amountCents)
	}
	if card.Installments < 1 {
		return interfaces.CardChargeResult{}, fmt.Errorf("installments must be >= 1, got %d", card.Installments)
	}
	if g != nil && g.mockMode {
		return g.mockCardCharge(intentID)
	}
	if g == nil || g.client == nil {
		return interfaces.CardChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] card create start external_reference=%s amount_cents=%d installments=%d", intentID, amountCents, card.Installments)

	req := payment.Request{
		TransactionAmount: centsToAmount(amountCents),
		Token:             card.Token,
		Installments:      card.Installments,
		PaymentMethodID:   card.PaymentMethodID,
		ExternalReference: intentID,
		NotificationURL:   g.notificationURL,
		Payer: &payment.PayerRequest{
			Email:     payer.Email,
			FirstName: payer.Name,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] card sdk create failed external_reference=%s err=%v", intentID, err)
		return interfaces.CardChargeResult{}, err
	}
	if resp.ExternalReference != intentID {
		log.Printf("[payment][gateway] card reference mismatch sent=%s got=%s", intentID, resp.ExternalReference)
		return interfaces.CardChargeResult{}, interfaces.ErrGatewayReferenceMismatch
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.CardChargeResult{}, err
	}
	log.Printf("[payment][gateway] card create success external_reference=%s provider_payment_id=%d provider_status=%s", intentID, resp.ID, resp.Status)

	return interfaces.CardChargeResult{
		ExternalID: strconv.Itoa(resp.ID),
		Status:     resp.Status,
		Raw:        raw,
	}, nil
}

// GetPayment resolves a webhook notification: Mercado Pago sends only the payment
// id, the reference and status come from this read.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, gatewayPaymentID string) (interfaces.PaymentDetails, error) {
	if g != nil && g.mockMode {
		return g.mockPaymentDetails(gatewayPaymentID)
	}
	if g == nil || g.client == nil {
		return interfaces.PaymentDetails{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(gatewayPaymentID))
	if err != nil {
		return interfaces.PaymentDetails{}, fmt.Errorf("invalid gateway payment id %q: %w", gatewayPaymentID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] get failed provider_payment_id=%s err=%v", gatewayPaymentID, err)
		return interfaces.PaymentDetails{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentDetails{}, err
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%d provider_status=%s external_reference=%s", resp.ID, resp.Status, resp.ExternalReference)

	return interfaces.PaymentDetails{
		ExternalID:        strconv.Itoa(resp.ID),
		ExternalReference: resp.ExternalReference,
		Status:            resp.Status,
		PaymentMethodID:   resp.PaymentMethodID,
		Raw:               raw,
	}, nil
}

func (g *MercadoPagoGateway) mockPixIntent(intentID string) (interfaces.PixIntentResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             interfaces.GatewayStatusPending,
		"external_reference": intentID,
		"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.PixIntentResult{}, err
	}
	log.Printf("[payment][gateway] mock pix create external_reference=%s provider_payment_id=%s", intentID, id)
	return interfaces.PixIntentResult{
		ExternalID:   id,
		QRCode:       "00020126MOCKPIXCOPIAECOLA" + intentID,
		QRCodeBase64: "",
		TicketURL:    "https://sandbox.mercadopago.local/pix/" + id,
		Raw:          raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCardCharge(intentID string) (interfaces.CardChargeResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             interfaces.GatewayStatusApproved,
		"status_detail":      "accredited",
		"external_reference": intentID,
		"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.CardChargeResult{}, err
	}
	log.Printf("[payment][gateway] mock card create external_reference=%s provider_payment_id=%s provider_status=approved", intentID, id)
	return interfaces.CardChargeResult{
		ExternalID: id,
		Status:     interfaces.GatewayStatusApproved,
		Raw:        raw,
	}, nil
}

func (g *MercadoPagoGateway) mockPaymentDetails(gatewayPaymentID string) (interfaces.PaymentDetails, error) {
	raw, err := json.Marshal(map[string]any{
		"id":     gatewayPaymentID,
		"status": interfaces.GatewayStatusApproved,
	})
	if err != nil {
		return interfaces.PaymentDetails{}, err
	}
	log.Printf("[payment][gateway] mock get provider_payment_id=%s provider_status=approved", gatewayPaymentID)
	return interfaces.PaymentDetails{
		ExternalID:      gatewayPaymentID,
		Status:          interfaces.GatewayStatusApproved,
		PaymentMethodID: "pix",
		Raw:             raw,
	}, nil
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100.0
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
