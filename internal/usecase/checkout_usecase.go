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

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerID   = errors.New("invalid customer_id")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrNoOrders            = errors.New("checkout requires at least one order")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotPayable     = errors.New("order is not pending payment")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrAmountMismatch      = errors.New("total does not match order sum")
	ErrInvalidCardToken    = errors.New("invalid card token")
	ErrInvalidInstallments = errors.New("invalid installments")
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrPaymentNotRefunded  = errors.New("payment cannot be refunded")
)

// PixCheckoutInput is the normalized checkout request for a PIX payment.
type PixCheckoutInput struct {
	CustomerID  string
	OrderIDs    []string
	TotalCents  int64
	Description string
}

// CardCheckoutInput adds the tokenized card data on top of the common fields.
type CardCheckoutInput struct {
	PixCheckoutInput
	CardToken       string
	PaymentMethodID string
	Installments    int
}

// PixCheckoutResult pairs the persisted intent with the PIX data the client renders.
type PixCheckoutResult struct {
	Intent       entities.PaymentIntent
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
}

// ICheckoutUseCase creates payment intents against the gateway and reads them back
// for client polling. Reads never mutate state.

type ICheckoutUseCase interface {
	CreatePixCheckout(ctx context.Context, in PixCheckoutInput) (PixCheckoutResult, error)
	CreateCardCheckout(ctx context.Context, in CardCheckoutInput) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	Cancel(ctx context.Context, id string) (entities.PaymentIntent, error)
	Refund(ctx context.Context, id string) (entities.PaymentIntent, error)
}

type CheckoutUseCase struct {
	intents      interfaces.IPaymentIntentRepository
	orders       interfaces.IOrderRepository
	customers    interfaces.ICustomerRepository
	gateway      interfaces.IPaymentGateway
	confirmation IPaymentConfirmationUseCase
	notifier     interfaces.INotifier
	now          func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	intents interfaces.IPaymentIntentRepository,
	orders interfaces.IOrderRepository,
	customers interfaces.ICustomerRepository,
	gateway interfaces.IPaymentGateway,
	confirmation IPaymentConfirmationUseCase,
	notifier interfaces.INotifier,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		intents:      intents,
		orders:       orders,
		customers:    customers,
		gateway:      gateway,
		confirmation: confirmation,
		notifier:     notifier,
		now:          time.Now,
	}
}

// CreatePixCheckout creates the gateway intent first and persists the pending record
// second: a gateway failure leaves no intent record referencing a charge that was
// never created.
func (u *CheckoutUseCase) CreatePixCheckout(ctx context.Context, in PixCheckoutInput) (PixCheckoutResult, error) {
	log.Printf("[checkout][usecase] pix start customer_id=%s orders=%d total_cents=%d", in.CustomerID, len(in.OrderIDs), in.TotalCents)
	customer, err := u.validateCheckout(ctx, in)
	if err != nil {
		return PixCheckoutResult{}, err
	}

	intentID := uuid.NewString()
	description := in.Description
	if description == "" {
		description = fmt.Sprintf("Pedido(s) %s", strings.Join(in.OrderIDs, ", "))
	}

	pix, err := u.gateway.CreatePixIntent(ctx, intentID, customer, in.TotalCents, description)
	if err != nil {
		log.Printf("[checkout][usecase] pix gateway failed customer_id=%s err=%v", in.CustomerID, err)
		return PixCheckoutResult{}, err
	}

	intent, err := u.persistPending(ctx, intentID, in, entities.PaymentMethodPix, 1, pix.ExternalID, pix.Raw)
	if err != nil {
		return PixCheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] pix created intent_id=%s external_id=%s", intent.ID, pix.ExternalID)

	if u.notifier != nil && pix.TicketURL != "" {
		if err := u.notifier.SendPaymentLink(ctx, customer, intent, pix.TicketURL); err != nil {
			log.Printf("[checkout][usecase] payment link notification failed intent_id=%s err=%v", intent.ID, err)
		}
	}

	return PixCheckoutResult{
		Intent:       intent,
		QRCode:       pix.QRCode,
		QRCodeBase64: pix.QRCodeBase64,
		TicketURL:    pix.TicketURL,
	}, nil
}

// CreateCardCheckout charges the tokenized card and maps the synchronous gateway
// status: approved triggers the confirmation engine right away, rejected/cancelled
// is recorded as recusado, anything else stays pendente awaiting the webhook.
func (u *CheckoutUseCase) CreateCardCheckout(ctx context.Context, in CardCheckoutInput) (entities.PaymentIntent, error) {
	log.Printf("[checkout][usecase] card start customer_id=%s orders=%d total_cents=%d installments=%d", in.CustomerID, len(in.OrderIDs), in.TotalCents, in.Installments)
	if strings.TrimSpace(in.CardToken) == "" {
		return entities.PaymentIntent{}, ErrInvalidCardToken
	}
	if in.Installments < 1 {
		return entities.PaymentIntent{}, ErrInvalidInstallments
	}
	customer, err := u.validateCheckout(ctx, in.PixCheckoutInput)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	intentID := uuid.NewString()
	charge, err := u.gateway.CreateCardCharge(ctx, intentID, customer, in.TotalCents, interfaces.CardChargeRequest{
		Token:           in.CardToken,
		PaymentMethodID: in.PaymentMethodID,
		Installments:    in.Installments,
	})
	if err != nil {
		log.Printf("[checkout][usecase] card gateway failed customer_id=%s err=%v", in.CustomerID, err)
		return entities.PaymentIntent{}, err
	}

	intent, err := u.persistPending(ctx, intentID, in.PixCheckoutInput, entities.PaymentMethodCartao, in.Installments, charge.ExternalID, charge.Raw)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	log.Printf("[checkout][usecase] card created intent_id=%s external_id=%s gateway_status=%s", intent.ID, charge.ExternalID, charge.Status)

	switch charge.Status {
	case interfaces.GatewayStatusApproved:
		// Trigger (a): the synchronous approval path. The webhook may race this
		// call; ConfirmPayment is idempotent either way.
		if u.confirmation != nil {
			if err := u.confirmation.ConfirmPayment(ctx, intent.ID, charge.ExternalID, in.PaymentMethodID); err != nil {
				if errors.Is(err, ErrInvoiceGeneration) {
					log.Printf("[checkout][usecase] ERROR invoice failed after card approval intent_id=%s err=%v", intent.ID, err)
				} else {
					return entities.PaymentIntent{}, err
				}
			}
		}
	case interfaces.GatewayStatusRejected, interfaces.GatewayStatusCancelled:
		if _, err := u.intents.UpdateStatus(ctx, intent.ID, entities.PaymentIntentStatusRecusado); err != nil {
			return entities.PaymentIntent{}, err
		}
	}

	return u.intents.GetByID(ctx, intent.ID)
}

// GetByID backs client polling; it reflects the latest committed state and never
// performs a confirmation.
func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentIntent{}, ErrPaymentIntentNotFound
	}

	intent, err := u.intents.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.ID == "" {
		return entities.PaymentIntent{}, ErrPaymentIntentNotFound
	}
	return intent, nil
}

// Cancel abandons a still-pending checkout.
func (u *CheckoutUseCase) Cancel(ctx context.Context, id string) (entities.PaymentIntent, error) {
	intent, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.Status != entities.PaymentIntentStatusPendente {
		return entities.PaymentIntent{}, ErrPaymentNotPending
	}
	return u.intents.UpdateStatus(ctx, intent.ID, entities.PaymentIntentStatusCancelado)
}

// Refund marks an approved payment as refunded; only reachable from aprovado.
func (u *CheckoutUseCase) Refund(ctx context.Context, id string) (entities.PaymentIntent, error) {
	intent, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.Status != entities.PaymentIntentStatusAprovado {
		return entities.PaymentIntent{}, ErrPaymentNotRefunded
	}
	return u.intents.UpdateStatus(ctx, intent.ID, entities.PaymentIntentStatusEstornado)
}

func (u *CheckoutUseCase) validateCheckout(ctx context.Context, in PixCheckoutInput) (entities.Customer, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if len(in.OrderIDs) == 0 {
		return entities.Customer{}, ErrNoOrders
	}
	if in.TotalCents <= 0 {
		return entities.Customer{}, ErrInvalidAmount
	}
	if u.intents == nil {
		return entities.Customer{}, errors.New("payment intent repository not configured")
	}
	if u.gateway == nil {
		return entities.Customer{}, errors.New("payment gateway not configured")
	}
	if u.customers == nil {
		return entities.Customer{}, errors.New("customer repository not configured")
	}
	if u.orders == nil {
		return entities.Customer{}, errors.New("order repository not configured")
	}

	customer, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if customer.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	var sum int64
	for _, orderID := range in.OrderIDs {
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.Customer{}, err
		}
		if order.ID == "" {
			log.Printf("[checkout][usecase] order not found order_id=%s", orderID)
			return entities.Customer{}, ErrOrderNotFound
		}
		if order.Status != entities.OrderStatusPendente {
			log.Printf("[checkout][usecase] order not payable order_id=%s status=%s", orderID, order.Status)
			return entities.Customer{}, ErrOrderNotPayable
		}
		sum += order.PriceCents
	}
	// The source of truth for amount is the order records in DB.
	if sum != in.TotalCents {
		log.Printf("[checkout][usecase] amount mismatch requested=%d computed=%d", in.TotalCents, sum)
		return entities.Customer{}, ErrAmountMismatch
	}

	return customer, nil
}

func (u *CheckoutUseCase) persistPending(ctx context.Context, intentID string, in PixCheckoutInput, method entities.PaymentMethod, installments int, externalID string, raw []byte) (entities.PaymentIntent, error) {
	now := u.now().UTC()
	intent := entities.PaymentIntent{
		ID:                intentID,
		ExternalID:        externalID,
		CustomerID:        in.CustomerID,
		OrderIDs:          in.OrderIDs,
		TotalCents:        in.TotalCents,
		Method:            method,
		Status:            entities.PaymentIntentStatusPendente,
		Installments:      installments,
		CreatedAt:         now,
		UpdatedAt:         now,
		GatewayPayloadRaw: raw,
	}

	created, err := u.intents.Create(ctx, intent)
	if err != nil {
		log.Printf("[checkout][usecase] intent create failed intent_id=%s err=%v", intentID, err)
		return entities.PaymentIntent{}, err
	}
	return created, nil
}
