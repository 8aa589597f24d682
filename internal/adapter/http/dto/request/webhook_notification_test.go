package request

import (
	"encoding/json"
	"testing"
)

func TestMercadoPagoWebhookNotification_IsPaymentEvent(t *testing.T) {
	n := MercadoPagoWebhookNotification{Type: "payment"}
	if !n.IsPaymentEvent() {
		t.Fatalf("expected payment event")
	}

	n2 := MercadoPagoWebhookNotification{Type: "plan"}
	if n2.IsPaymentEvent() {
		t.Fatalf("expected non-payment event")
	}
}

func TestMercadoPagoWebhookNotification_Unmarshal(t *testing.T) {
	// Real-world shape: top-level id can be a number or a string, data.id is a string.
	body := `{"id":12345,"live_mode":true,"type":"payment","action":"payment.updated","api_version":"v1","data":{"id":"999888777"}}`

	var n MercadoPagoWebhookNotification
	if err := json.Unmarshal([]byte(body), &n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.IsPaymentEvent() {
		t.Fatalf("expected payment event, got type=%s", n.Type)
	}
	if n.Data.ID != "999888777" {
		t.Fatalf("expected data id 999888777, got %s", n.Data.ID)
	}
	if n.Action != "payment.updated" {
		t.Fatalf("unexpected action: %s", n.Action)
	}

	stringID := `{"id":"abc","type":"payment","data":{"id":"1"}}`
	var n2 MercadoPagoWebhookNotification
	if err := json.Unmarshal([]byte(stringID), &n2); err != nil {
		t.Fatalf("string id must unmarshal, got %v", err)
	}
}
