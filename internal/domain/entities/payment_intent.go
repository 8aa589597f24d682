package entities

import (
	"encoding/json"
	"time"
)

// PaymentIntentStatus represents the lifecycle of a checkout payment attempt.

type PaymentIntentStatus string

const (
	PaymentIntentStatusPendente  PaymentIntentStatus = "pendente"
	PaymentIntentStatusAprovado  PaymentIntentStatus = "aprovado"
	PaymentIntentStatusRecusado  PaymentIntentStatus = "recusado"
	PaymentIntentStatusCancelado PaymentIntentStatus = "cancelado"
	PaymentIntentStatusEstornado PaymentIntentStatus = "estornado"
)

// PaymentMethod is the internal method tag chosen at checkout.

type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodCartao PaymentMethod = "cartao_credito"
)

// InvoiceMetadata holds the nota fiscal data attached to an approved payment.
//
// Number is allocated from the year-scoped fiscal counter and never reused.
// DocumentKey/DocumentURL reference the rendered document in object storage.

type InvoiceMetadata struct {
	Number           string     `json:"number,omitempty"`
	DocumentKey      string     `json:"document_key,omitempty"`
	DocumentURL      string     `json:"document_url,omitempty"`
	GeneratedAt      *time.Time `json:"generated_at,omitempty"`
	NotificationSent bool       `json:"notification_sent,omitempty"`
}

// PaymentIntent is one checkout's payment attempt and its terminal state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_id-index): external_id
//
// The intent id doubles as the external_reference sent to Mercado Pago; that value
// is the idempotency key shared by the synchronous card response, the webhook and
// client polling. It is set once at creation and never changes.
//
// Mercado Pago payload:
//   - GatewayPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - GatewayPayload is an optional parsed representation, useful for querying/debugging.

type PaymentIntent struct {
	ID           string              `json:"id"`
	ExternalID   string              `json:"external_id,omitempty"`
	CustomerID   string              `json:"customer_id"`
	OrderIDs     []string            `json:"order_ids"`
	TotalCents   int64               `json:"total_cents"`
	Method       PaymentMethod       `json:"method"`
	Status       PaymentIntentStatus `json:"status"`
	Installments int                 `json:"installments,omitempty"`

	// GatewayMethod is the method label reported by the gateway (e.g. "pix", "master").
	GatewayMethod string `json:"gateway_method,omitempty"`

	// WebhookProcessed is the second idempotency guard next to Status; both are
	// flipped in the same conditional update when a confirmation wins.
	WebhookProcessed bool `json:"webhook_processed"`

	Invoice    InvoiceMetadata `json:"invoice"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	GatewayPayloadRaw json.RawMessage        `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
}
