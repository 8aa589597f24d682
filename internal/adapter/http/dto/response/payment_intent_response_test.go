package response

import (
	"testing"
	"time"

	"uniformes_store/internal/domain/entities"
)

func TestFromPaymentIntent(t *testing.T) {
	now := time.Now().UTC()
	generatedAt := now.Add(-time.Minute)

	p := entities.PaymentIntent{
		ID:           "intent-1",
		ExternalID:   "123456",
		CustomerID:   "cust-1",
		OrderIDs:     []string{"order-1", "order-2"},
		TotalCents:   15000,
		Method:       entities.PaymentMethodPix,
		Status:       entities.PaymentIntentStatusAprovado,
		Installments: 1,
		Invoice: entities.InvoiceMetadata{
			Number:           "NF-2026-000001",
			DocumentKey:      "invoices/2026/NF-2026-000001.html",
			DocumentURL:      "https://docs/NF-2026-000001.html",
			GeneratedAt:      &generatedAt,
			NotificationSent: true,
		},
		ApprovedAt: &now,
		CreatedAt:  now,
	}

	res := FromPaymentIntent(p)
	if res.ID != "intent-1" || res.ExternalID != "123456" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.CustomerID != "cust-1" || len(res.OrderIDs) != 2 {
		t.Fatalf("unexpected customer/orders: %+v", res)
	}
	if res.TotalCents != 15000 || res.Method != "pix" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Invoice.Number != "NF-2026-000001" || !res.Invoice.NotificationSent {
		t.Fatalf("unexpected invoice: %+v", res.Invoice)
	}
	if res.Invoice.DocumentURL != "https://docs/NF-2026-000001.html" {
		t.Fatalf("unexpected document url: %s", res.Invoice.DocumentURL)
	}
	if res.Invoice.GeneratedAt == nil || !res.Invoice.GeneratedAt.Equal(generatedAt) {
		t.Fatalf("unexpected generated_at: %v", res.Invoice.GeneratedAt)
	}
	if res.ApprovedAt == nil || !res.ApprovedAt.Equal(now) {
		t.Fatalf("unexpected approved_at: %v", res.ApprovedAt)
	}
}

func TestFromPaymentIntent_PendingHasNoInvoice(t *testing.T) {
	p := entities.PaymentIntent{
		ID:     "intent-2",
		Status: entities.PaymentIntentStatusPendente,
	}

	res := FromPaymentIntent(p)
	if res.Invoice.Number != "" || res.Invoice.GeneratedAt != nil {
		t.Fatalf("expected empty invoice metadata, got %+v", res.Invoice)
	}
	if res.ApprovedAt != nil {
		t.Fatalf("expected nil approved_at, got %v", res.ApprovedAt)
	}
}
