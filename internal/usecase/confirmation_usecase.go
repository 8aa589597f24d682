package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"uniformes_store/internal/domain/entities"
	"uniformes_store/internal/usecase/interfaces"
)

var (
	ErrPaymentIntentNotFound = errors.New("payment intent not found")
	ErrPaymentNotApproved    = errors.New("payment not approved")

	// ErrInvoiceGeneration marks the one partial-failure state needing operator
	// visibility: the payment is committed as approved but the nota fiscal artifact
	// is missing. The approval is never rolled back; reissue via ReissueInvoice.
	ErrInvoiceGeneration = errors.New("invoice generation failed")
)

// IPaymentConfirmationUseCase is the single authority that marks a PaymentIntent
// approved and fans out side effects. Both confirmation triggers (synchronous card
// response and webhook) call ConfirmPayment; client polling never does.

type IPaymentConfirmationUseCase interface {
	ConfirmPayment(ctx context.Context, externalReference, gatewayPaymentID, gatewayMethod string) error
	RejectPayment(ctx context.Context, externalReference, gatewayPaymentID string) error
	ReissueInvoice(ctx context.Context, intentID string) (entities.PaymentIntent, error)
}

type PaymentConfirmationUseCase struct {
	intents   interfaces.IPaymentIntentRepository
	orders    interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
	sequence  IInvoiceSequence
	renderer  interfaces.IInvoiceRenderer
	notifier  interfaces.INotifier
	now       func() time.Time
}

var _ IPaymentConfirmationUseCase = (*PaymentConfirmationUseCase)(nil)

func NewPaymentConfirmationUseCase(
	intents interfaces.IPaymentIntentRepository,
	orders interfaces.IOrderRepository,
	customers interfaces.ICustomerRepository,
	sequence IInvoiceSequence,
	renderer interfaces.IInvoiceRenderer,
	notifier interfaces.INotifier,
) *PaymentConfirmationUseCase {
	return &PaymentConfirmationUseCase{
		intents:   intents,
		orders:    orders,
		customers: customers,
		sequence:  sequence,
		renderer:  renderer,
		notifier:  notifier,
		now:       time.Now,
	}
}

// ConfirmPayment is idempotent under at-least-once delivery. The guard is evaluated
// fresh on every call and the pendente -> aprovado transition is a single conditional
// write in the repository, so two racing callers on the same externalReference cannot
// both win; the loser observes the already-approved record and stops.
//
// Unknown references and already-approved intents are soft no-ops (nil error): the
// gateway may notify about stale references and retries must not be provoked.
// Errors returned here are either transient storage failures (caller may retry) or
// ErrInvoiceGeneration (approval committed, artifact missing).
func (u *PaymentConfirmationUseCase) ConfirmPayment(ctx context.Context, externalReference, gatewayPaymentID, gatewayMethod string) error {
	externalReference = strings.TrimSpace(externalReference)
	log.Printf("[confirmation][usecase] confirm start external_reference=%s gateway_payment_id=%s method=%s", externalReference, gatewayPaymentID, gatewayMethod)
	if externalReference == "" {
		log.Printf("[confirmation][usecase] empty external_reference; ignoring")
		return nil
	}
	if u.intents == nil {
		return errors.New("payment intent repository not configured")
	}

	// The external reference is the intent id itself.
	intent, err := u.intents.GetByID(ctx, externalReference)
	if err != nil {
		log.Printf("[confirmation][usecase] intent lookup failed external_reference=%s err=%v", externalReference, err)
		return err
	}
	if intent.ID == "" {
		log.Printf("[confirmation][usecase] unknown external_reference=%s; ignoring", externalReference)
		return nil
	}
	if intent.Status == entities.PaymentIntentStatusAprovado || intent.WebhookProcessed {
		log.Printf("[confirmation][usecase] already processed external_reference=%s status=%s; no-op", externalReference, intent.Status)
		return nil
	}

	approved, won, err := u.intents.ApproveIfPending(ctx, intent.ID, gatewayPaymentID, gatewayMethod, u.now().UTC())
	if err != nil {
		log.Printf("[confirmation][usecase] approve update failed external_reference=%s err=%v", externalReference, err)
		return err
	}
	if !won {
		log.Printf("[confirmation][usecase] lost confirmation race external_reference=%s status=%s; no-op", externalReference, approved.Status)
		return nil
	}
	log.Printf("[confirmation][usecase] approved external_reference=%s gateway_payment_id=%s", externalReference, gatewayPaymentID)

	// Best-effort fan-out, not transactional with the approval.
	for _, orderID := range approved.OrderIDs {
		if err := u.orders.UpdateStatus(ctx, orderID, entities.OrderStatusEmAndamento); err != nil {
			log.Printf("[confirmation][usecase] order status update failed order_id=%s err=%v", orderID, err)
		}
	}

	if err := u.issueInvoice(ctx, approved); err != nil {
		log.Printf("[confirmation][usecase] ERROR invoice issuance failed external_reference=%s err=%v", externalReference, err)
		return fmt.Errorf("%w: %v", ErrInvoiceGeneration, err)
	}

	log.Printf("[confirmation][usecase] confirm success external_reference=%s invoice issued", externalReference)
	return nil
}

// RejectPayment moves a still-pending intent to recusado when the gateway reports a
// rejected/cancelled charge. Approved intents are never downgraded.
func (u *PaymentConfirmationUseCase) RejectPayment(ctx context.Context, externalReference, gatewayPaymentID string) error {
	externalReference = strings.TrimSpace(externalReference)
	log.Printf("[confirmation][usecase] reject start external_reference=%s gateway_payment_id=%s", externalReference, gatewayPaymentID)
	if externalReference == "" {
		return nil
	}
	if u.intents == nil {
		return errors.New("payment intent repository not configured")
	}

	intent, err := u.intents.GetByID(ctx, externalReference)
	if err != nil {
		return err
	}
	if intent.ID == "" {
		log.Printf("[confirmation][usecase] unknown external_reference=%s; ignoring rejection", externalReference)
		return nil
	}
	if intent.Status != entities.PaymentIntentStatusPendente {
		log.Printf("[confirmation][usecase] rejection ignored external_reference=%s status=%s", externalReference, intent.Status)
		return nil
	}

	if _, err := u.intents.UpdateStatus(ctx, intent.ID, entities.PaymentIntentStatusRecusado); err != nil {
		return err
	}
	log.Printf("[confirmation][usecase] marked recusado external_reference=%s", externalReference)
	return nil
}

// ReissueInvoice is the manual reconciliation path for approved payments whose
// invoice failed to generate. A previously allocated number is reused; the counter
// is only touched when the intent never received a number.
func (u *PaymentConfirmationUseCase) ReissueInvoice(ctx context.Context, intentID string) (entities.PaymentIntent, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return entities.PaymentIntent{}, ErrPaymentIntentNotFound
	}
	if u.intents == nil {
		return entities.PaymentIntent{}, errors.New("payment intent repository not configured")
	}

	intent, err := u.intents.GetByID(ctx, intentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.ID == "" {
		return entities.PaymentIntent{}, ErrPaymentIntentNotFound
	}
	if intent.Status != entities.PaymentIntentStatusAprovado {
		return entities.PaymentIntent{}, ErrPaymentNotApproved
	}

	if err := u.issueInvoice(ctx, intent); err != nil {
		log.Printf("[confirmation][usecase] ERROR invoice reissue failed intent_id=%s err=%v", intentID, err)
		return entities.PaymentIntent{}, fmt.Errorf("%w: %v", ErrInvoiceGeneration, err)
	}

	return u.intents.GetByID(ctx, intentID)
}

// issueInvoice allocates (or reuses) the nota fiscal number, renders the document
// and persists the resulting metadata. The number is persisted before rendering so
// a render failure never loses an allocated number.
func (u *PaymentConfirmationUseCase) issueInvoice(ctx context.Context, intent entities.PaymentIntent) error {
	if u.customers == nil {
		return errors.New("customer repository not configured")
	}
	if u.orders == nil {
		return errors.New("order repository not configured")
	}
	if u.sequence == nil {
		return errors.New("invoice sequence not configured")
	}
	if u.renderer == nil {
		return errors.New("invoice renderer not configured")
	}

	customer, err := u.customers.GetByID(ctx, intent.CustomerID)
	if err != nil {
		return err
	}
	if customer.ID == "" {
		return fmt.Errorf("customer %s not found", intent.CustomerID)
	}

	lines := make([]interfaces.InvoiceLine, 0, len(intent.OrderIDs))
	for _, orderID := range intent.OrderIDs {
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ID == "" {
			return fmt.Errorf("order %s not found", orderID)
		}
		unit := order.PriceCents
		if order.Quantity > 0 {
			unit = order.PriceCents / int64(order.Quantity)
		}
		lines = append(lines, interfaces.InvoiceLine{
			ProductName:    order.ProductName,
			Quantity:       order.Quantity,
			UnitPriceCents: unit,
			TotalCents:     order.PriceCents,
		})
	}

	number := intent.Invoice.Number
	issuedAt := u.now().UTC()
	if number == "" {
		number, err = u.sequence.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		if err := u.intents.SetInvoiceNumber(ctx, intent.ID, number, issuedAt); err != nil {
			return err
		}
	} else if intent.Invoice.GeneratedAt != nil {
		issuedAt = *intent.Invoice.GeneratedAt
	}

	doc, err := u.renderer.Render(ctx, interfaces.InvoiceData{
		Number:     number,
		IssuedAt:   issuedAt,
		Customer:   customer,
		Lines:      lines,
		TotalCents: intent.TotalCents,
	})
	if err != nil {
		return err
	}
	if err := u.intents.SetInvoiceDocument(ctx, intent.ID, doc.DocumentKey, doc.DocumentURL); err != nil {
		return err
	}
	log.Printf("[confirmation][usecase] invoice rendered intent_id=%s number=%s document=%s", intent.ID, number, doc.DocumentKey)

	intent.Invoice.Number = number
	if u.notifier != nil {
		if err := u.notifier.SendInvoice(ctx, customer, intent); err != nil {
			log.Printf("[confirmation][usecase] invoice notification failed intent_id=%s err=%v", intent.ID, err)
		} else if err := u.intents.SetNotificationSent(ctx, intent.ID); err != nil {
			log.Printf("[confirmation][usecase] notification flag update failed intent_id=%s err=%v", intent.ID, err)
		}
	}

	return nil
}
