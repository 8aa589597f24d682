package interfaces

import (
	"context"

	"uniformes_store/internal/domain/entities"
)

// INotifier sends customer-facing messages. Failures are logged by callers and
// never abort a payment flow.

type INotifier interface {
	SendPaymentLink(ctx context.Context, customer entities.Customer, intent entities.PaymentIntent, ticketURL string) error
	SendInvoice(ctx context.Context, customer entities.Customer, intent entities.PaymentIntent) error
}
