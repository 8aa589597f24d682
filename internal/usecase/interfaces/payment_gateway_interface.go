package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"uniformes_store/internal/domain/entities"
)

// Gateway status labels as reported by Mercado Pago.
const (
	GatewayStatusPending   = "pending"
	GatewayStatusApproved  = "approved"
	GatewayStatusRejected  = "rejected"
	GatewayStatusCancelled = "cancelled"
	GatewayStatusInProcess = "in_process"
)

var (
	// ErrGatewayUnexpectedStatus means a freshly created PIX intent did not start
	// in pending state; the creation is treated as failed, never as a success.
	ErrGatewayUnexpectedStatus = errors.New("payment gateway returned unexpected initial status")

	// ErrGatewayReferenceMismatch means the gateway echoed an external_reference
	// different from the one sent. Fail closed: the response cannot be trusted.
	ErrGatewayReferenceMismatch = errors.New("payment gateway external_reference mismatch")
)

// PixIntentResult is the normalized outcome of a PIX intent creation.
type PixIntentResult struct {
	ExternalID   string
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
	Raw          json.RawMessage
}

// CardChargeRequest carries the client-side tokenized card data. Token is a
// single-use reference produced by the gateway's JS SDK; raw card data never
// reaches this service (PCI boundary).
type CardChargeRequest struct {
	Token           string
	PaymentMethodID string
	Installments    int
}

// CardChargeResult is the normalized outcome of a card charge creation.
type CardChargeResult struct {
	ExternalID string
	Status     string
	Raw        json.RawMessage
}

// PaymentDetails is the normalized read of an existing gateway payment, used to
// resolve webhook notifications (Mercado Pago delivers only the payment id).
type PaymentDetails struct {
	ExternalID        string
	ExternalReference string
	Status            string
	PaymentMethodID   string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// Every create call sets external_reference to the internal intent id and rejects
// responses whose reference does not match what was sent.

type IPaymentGateway interface {
	CreatePixIntent(ctx context.Context, intentID string, payer entities.Customer, amountCents int64, description string) (PixIntentResult, error)
	CreateCardCharge(ctx context.Context, intentID string, payer entities.Customer, amountCents int64, card CardChargeRequest) (CardChargeResult, error)
	GetPayment(ctx context.Context, gatewayPaymentID string) (PaymentDetails, error)
}
