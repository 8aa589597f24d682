package entities

import "time"

// OrderStatus is the lifecycle of an order as far as this service cares.
//
// Payment confirmation only moves referenced orders to "em_andamento"; the rest of
// the order lifecycle belongs to the order-management surface.

type OrderStatus string

const (
	OrderStatusPendente    OrderStatus = "pendente"
	OrderStatusEmAndamento OrderStatus = "em_andamento"
	OrderStatusConcluido   OrderStatus = "concluido"
	OrderStatusCancelado   OrderStatus = "cancelado"
)

// Order is the slice of the order record consumed here: enough to validate a
// checkout total and to assemble invoice line items.
//
// PriceCents is the line total; the unit price is derived as PriceCents/Quantity
// when building the invoice.

type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	Quantity    int         `json:"quantity"`
	PriceCents  int64       `json:"price_cents"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
