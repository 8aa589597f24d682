package entities

import "time"

// Customer is the slice of the customer record consumed by payments: identity for
// the gateway payer and contact data for notifications.

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  string    `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
