package request

// MercadoPagoWebhookNotification is the inbound IPN/webhook body.
// Only type/action and data.id are relied upon; the payment status and
// external_reference are resolved by fetching the payment from the gateway.

type MercadoPagoWebhookNotification struct {
	ID          any    `json:"id"`
	LiveMode    bool   `json:"live_mode"`
	Type        string `json:"type"`
	Action      string `json:"action"`
	DateCreated string `json:"date_created"`
	APIVersion  string `json:"api_version"`
	Data        struct {
		ID string `json:"id"`
	} `json:"data"`
}

// IsPaymentEvent reports whether the notification refers to a payment resource.
func (n MercadoPagoWebhookNotification) IsPaymentEvent() bool {
	return n.Type == "payment"
}
