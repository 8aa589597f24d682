package response

import (
	"time"

	"uniformes_store/internal/domain/entities"
)

type InvoiceResponse struct {
	Number           string     `json:"number,omitempty"`
	DocumentURL      string     `json:"document_url,omitempty"`
	GeneratedAt      *time.Time `json:"generated_at,omitempty"`
	NotificationSent bool       `json:"notification_sent"`
}

type PaymentIntentResponse struct {
	ID           string          `json:"id"`
	ExternalID   string          `json:"external_id,omitempty"`
	CustomerID   string          `json:"customer_id"`
	OrderIDs     []string        `json:"order_ids"`
	TotalCents   int64           `json:"total_cents"`
	Method       string          `json:"method"`
	Status       string          `json:"status"`
	Installments int             `json:"installments,omitempty"`
	Invoice      InvoiceResponse `json:"invoice"`
	ApprovedAt   *time.Time      `json:"approved_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PixCheckoutResponse adds the PIX payment data the storefront renders.

type PixCheckoutResponse struct {
	PaymentIntentResponse
	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

func FromPaymentIntent(p entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:           p.ID,
		ExternalID:   p.ExternalID,
		CustomerID:   p.CustomerID,
		OrderIDs:     p.OrderIDs,
		TotalCents:   p.TotalCents,
		Method:       string(p.Method),
		Status:       string(p.Status),
		Installments: p.Installments,
		Invoice: InvoiceResponse{
			Number:           p.Invoice.Number,
			DocumentURL:      p.Invoice.DocumentURL,
			GeneratedAt:      p.Invoice.GeneratedAt,
			NotificationSent: p.Invoice.NotificationSent,
		},
		ApprovedAt: p.ApprovedAt,
		CreatedAt:  p.CreatedAt,
	}
}
