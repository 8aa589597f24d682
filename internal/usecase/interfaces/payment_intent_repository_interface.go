package interfaces

import (
	"context"
	"time"

	"uniformes_store/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// ApproveIfPending is the atomic check-and-set behind payment confirmation: it must
// transition pendente -> aprovado (setting gateway id, method label, approval time and
// the processed flag) only when the intent is not yet approved and not yet processed,
// in a single conditional write. When the condition fails it reports won=false with
// the current record and no error, so racing callers can observe the winner's state.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.PaymentIntent, error)
	ApproveIfPending(ctx context.Context, id, gatewayPaymentID, gatewayMethod string, approvedAt time.Time) (intent entities.PaymentIntent, won bool, err error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentIntentStatus) (entities.PaymentIntent, error)
	SetInvoiceNumber(ctx context.Context, id, number string, generatedAt time.Time) error
	SetInvoiceDocument(ctx context.Context, id, documentKey, documentURL string) error
	SetNotificationSent(ctx context.Context, id string) error
}
