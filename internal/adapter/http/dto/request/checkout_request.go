package request

// PixCheckoutRequest is the payload for "cria pagamento PIX".
//
// total_cents must match the sum of the referenced orders; the usecase re-checks it
// against the order records in DB.

type PixCheckoutRequest struct {
	CustomerID  string   `json:"customer_id" binding:"required"`
	OrderIDs    []string `json:"order_ids" binding:"required,min=1"`
	TotalCents  int64    `json:"total_cents" binding:"required,gt=0"`
	Description string   `json:"description"`
}

// CardCheckoutRequest is the payload for "cria pagamento cartão".
//
// card_token is produced by the Mercado Pago JS SDK on the client; raw card data
// never reaches this API.

type CardCheckoutRequest struct {
	CustomerID      string   `json:"customer_id" binding:"required"`
	OrderIDs        []string `json:"order_ids" binding:"required,min=1"`
	TotalCents      int64    `json:"total_cents" binding:"required,gt=0"`
	Description     string   `json:"description"`
	CardToken       string   `json:"card_token" binding:"required"`
	PaymentMethodID string   `json:"payment_method_id" binding:"required"`
	Installments    int      `json:"installments" binding:"required,gte=1"`
}
