package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"uniformes_store/internal/domain/entities"
	"uniformes_store/internal/usecase/interfaces"
	mock_interfaces "uniformes_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	intents   *mock_interfaces.MockIPaymentIntentRepository
	orders    *mock_interfaces.MockIOrderRepository
	customers *mock_interfaces.MockICustomerRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	notifier  *mock_interfaces.MockINotifier
}

func newCheckoutMocks(ctrl *gomock.Controller) checkoutMocks {
	return checkoutMocks{
		intents:   mock_interfaces.NewMockIPaymentIntentRepository(ctrl),
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
}

func (m checkoutMocks) usecase(confirmation IPaymentConfirmationUseCase) *CheckoutUseCase {
	return NewCheckoutUseCase(m.intents, m.orders, m.customers, m.gateway, confirmation, m.notifier)
}

func (m checkoutMocks) expectHappyValidation() {
	m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Name: "Ana", Email: "ana@example.com"}, nil)
	m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1", ProductName: "Camisa polo", Quantity: 3, PriceCents: 15000, Status: entities.OrderStatusPendente}, nil)
}

func pixInput() PixCheckoutInput {
	return PixCheckoutInput{CustomerID: "cust-1", OrderIDs: []string{"order-1"}, TotalCents: 15000}
}

func TestCheckoutUseCase_Validations(t *testing.T) {
	cases := []struct {
		name string
		in   PixCheckoutInput
		want error
	}{
		{"empty customer id", PixCheckoutInput{OrderIDs: []string{"o"}, TotalCents: 100}, ErrInvalidCustomerID},
		{"no orders", PixCheckoutInput{CustomerID: "c", TotalCents: 100}, ErrNoOrders},
		{"zero amount", PixCheckoutInput{CustomerID: "c", OrderIDs: []string{"o"}}, ErrInvalidAmount},
		{"negative amount", PixCheckoutInput{CustomerID: "c", OrderIDs: []string{"o"}, TotalCents: -1}, ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newCheckoutMocks(ctrl)
			_, err := m.usecase(nil).CreatePixCheckout(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput())
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1", PriceCents: 15000, Status: entities.OrderStatusEmAndamento}, nil)

		_, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput())
		if !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1", PriceCents: 9900, Status: entities.OrderStatusPendente}, nil)

		_, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput())
		if !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("expected ErrAmountMismatch, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CreatePixCheckout(t *testing.T) {
	t.Run("gateway failure leaves no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()
		m.gateway.EXPECT().CreatePixIntent(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), gomock.Any()).
			Return(interfaces.PixIntentResult{}, errors.New("mp timeout"))
		// No Create expectation: the pending record must not be written.

		_, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput())
		if err == nil || err.Error() != "mp timeout" {
			t.Fatalf("expected mp timeout, got %v", err)
		}
	})

	t.Run("success persists pending intent with gateway data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()

		raw := json.RawMessage(`{"id":123,"status":"pending"}`)
		m.gateway.EXPECT().CreatePixIntent(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), gomock.Any()).
			Return(interfaces.PixIntentResult{ExternalID: "123", QRCode: "qr-data", QRCodeBase64: "cXItZGF0YQ==", TicketURL: "https://mp/ticket", Raw: raw}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
			if intent.ID == "" {
				t.Fatalf("expected generated intent id")
			}
			if intent.Status != entities.PaymentIntentStatusPendente {
				t.Fatalf("expected pendente, got %s", intent.Status)
			}
			if intent.ExternalID != "123" {
				t.Fatalf("expected external id 123, got %s", intent.ExternalID)
			}
			if intent.Method != entities.PaymentMethodPix {
				t.Fatalf("expected pix method, got %s", intent.Method)
			}
			if string(intent.GatewayPayloadRaw) != string(raw) {
				t.Fatalf("expected raw gateway payload to be stored")
			}
			return intent, nil
		})
		m.notifier.EXPECT().SendPaymentLink(gomock.Any(), gomock.Any(), gomock.Any(), "https://mp/ticket").Return(nil)

		got, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput())
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if got.QRCode != "qr-data" || got.TicketURL != "https://mp/ticket" {
			t.Fatalf("expected pix data in result, got %+v", got)
		}
		if got.Intent.Status != entities.PaymentIntentStatusPendente {
			t.Fatalf("expected pendente intent, got %s", got.Intent.Status)
		}
	})

	t.Run("payment link failure does not fail the checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()
		m.gateway.EXPECT().CreatePixIntent(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), gomock.Any()).
			Return(interfaces.PixIntentResult{ExternalID: "123", TicketURL: "https://mp/ticket"}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
			return intent, nil
		})
		m.notifier.EXPECT().SendPaymentLink(gomock.Any(), gomock.Any(), gomock.Any(), "https://mp/ticket").Return(errors.New("smtp refused"))

		if _, err := m.usecase(nil).CreatePixCheckout(context.Background(), pixInput()); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CreateCardCheckout(t *testing.T) {
	cardInput := func() CardCheckoutInput {
		return CardCheckoutInput{
			PixCheckoutInput: pixInput(),
			CardToken:        "tok-abc",
			PaymentMethodID:  "master",
			Installments:     3,
		}
	}

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		in := cardInput()
		in.CardToken = "  "
		_, err := m.usecase(nil).CreateCardCheckout(context.Background(), in)
		if !errors.Is(err, ErrInvalidCardToken) {
			t.Fatalf("expected ErrInvalidCardToken, got %v", err)
		}
	})

	t.Run("zero installments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		in := cardInput()
		in.Installments = 0
		_, err := m.usecase(nil).CreateCardCheckout(context.Background(), in)
		if !errors.Is(err, ErrInvalidInstallments) {
			t.Fatalf("expected ErrInvalidInstallments, got %v", err)
		}
	})

	t.Run("approved charge triggers synchronous confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()

		confirmed := false
		confirmation := confirmFunc(func(_ context.Context, externalReference, gatewayPaymentID, gatewayMethod string) error {
			confirmed = true
			if gatewayPaymentID != "456" {
				t.Fatalf("expected gateway payment id 456, got %s", gatewayPaymentID)
			}
			if gatewayMethod != "master" {
				t.Fatalf("expected method master, got %s", gatewayMethod)
			}
			return nil
		})

		var createdID string
		m.gateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), interfaces.CardChargeRequest{Token: "tok-abc", PaymentMethodID: "master", Installments: 3}).
			Return(interfaces.CardChargeResult{ExternalID: "456", Status: interfaces.GatewayStatusApproved}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
			createdID = intent.ID
			if intent.Method != entities.PaymentMethodCartao {
				t.Fatalf("expected cartao_credito, got %s", intent.Method)
			}
			if intent.Installments != 3 {
				t.Fatalf("expected 3 installments, got %d", intent.Installments)
			}
			return intent, nil
		})
		m.intents.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.PaymentIntent, error) {
			return entities.PaymentIntent{ID: id, Status: entities.PaymentIntentStatusAprovado}, nil
		})

		got, err := m.usecase(confirmation).CreateCardCheckout(context.Background(), cardInput())
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if !confirmed {
			t.Fatalf("expected synchronous confirmation to run")
		}
		if got.ID != createdID {
			t.Fatalf("expected final read of created intent, got %s", got.ID)
		}
		if got.Status != entities.PaymentIntentStatusAprovado {
			t.Fatalf("expected aprovado, got %s", got.Status)
		}
	})

	t.Run("invoice failure after approval does not fail the checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()

		wrapped := confirmFunc(func(context.Context, string, string, string) error {
			return fmt.Errorf("%w: %v", ErrInvoiceGeneration, errors.New("s3 unreachable"))
		})

		m.gateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), gomock.Any()).
			Return(interfaces.CardChargeResult{ExternalID: "456", Status: interfaces.GatewayStatusApproved}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
			return intent, nil
		})
		m.intents.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.PaymentIntent, error) {
			return entities.PaymentIntent{ID: id, Status: entities.PaymentIntentStatusAprovado}, nil
		})

		got, err := m.usecase(wrapped).CreateCardCheckout(context.Background(), cardInput())
		if err != nil {
			t.Fatalf("invoice failure must not fail the checkout, got %v", err)
		}
		if got.Status != entities.PaymentIntentStatusAprovado {
			t.Fatalf("expected aprovado, got %s", got.Status)
		}
	})

	t.Run("rejected charge is recorded as recusado without confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()

		confirmation := confirmFunc(func(context.Context, string, string, string) error {
			t.Fatalf("confirmation must not run for rejected charges")
			return nil
		})

		m.gateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), gomock.Any()).
			Return(interfaces.CardChargeResult{ExternalID: "789", Status: interfaces.GatewayStatusRejected}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
			return intent, nil
		})
		m.intents.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.PaymentIntentStatusRecusado).DoAndReturn(func(_ context.Context, id string, status entities.PaymentIntentStatus) (entities.PaymentIntent, error) {
			return entities.PaymentIntent{ID: id, Status: status}, nil
		})
		m.intents.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.PaymentIntent, error) {
			return entities.PaymentIntent{ID: id, Status: entities.PaymentIntentStatusRecusado}, nil
		})

		got, err := m.usecase(confirmation).CreateCardCheckout(context.Background(), cardInput())
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if got.Status != entities.PaymentIntentStatusRecusado {
			t.Fatalf("expected recusado, got %s", got.Status)
		}
	})

	t.Run("in_process charge stays pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.expectHappyValidation()

		m.gateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any(), gomock.Any(), int64(15000), gomock.Any()).
			Return(interfaces.CardChargeResult{ExternalID: "790", Status: interfaces.GatewayStatusInProcess}, nil)
		m.intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
			return intent, nil
		})
		m.intents.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.PaymentIntent, error) {
			return entities.PaymentIntent{ID: id, Status: entities.PaymentIntentStatusPendente}, nil
		})

		got, err := m.usecase(nil).CreateCardCheckout(context.Background(), cardInput())
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if got.Status != entities.PaymentIntentStatusPendente {
			t.Fatalf("expected pendente, got %s", got.Status)
		}
	})
}

func TestCheckoutUseCase_GetCancelRefund(t *testing.T) {
	t.Run("get unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.intents.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.PaymentIntent{}, nil)

		_, err := m.usecase(nil).GetByID(context.Background(), "ghost")
		if !errors.Is(err, ErrPaymentIntentNotFound) {
			t.Fatalf("expected ErrPaymentIntentNotFound, got %v", err)
		}
	})

	t.Run("cancel requires pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.intents.EXPECT().GetByID(gomock.Any(), "intent-1").Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusAprovado}, nil)

		_, err := m.usecase(nil).Cancel(context.Background(), "intent-1")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("cancel pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.intents.EXPECT().GetByID(gomock.Any(), "intent-1").Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusPendente}, nil)
		m.intents.EXPECT().UpdateStatus(gomock.Any(), "intent-1", entities.PaymentIntentStatusCancelado).Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusCancelado}, nil)

		got, err := m.usecase(nil).Cancel(context.Background(), "intent-1")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if got.Status != entities.PaymentIntentStatusCancelado {
			t.Fatalf("expected cancelado, got %s", got.Status)
		}
	})

	t.Run("refund requires aprovado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.intents.EXPECT().GetByID(gomock.Any(), "intent-1").Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusPendente}, nil)

		_, err := m.usecase(nil).Refund(context.Background(), "intent-1")
		if !errors.Is(err, ErrPaymentNotRefunded) {
			t.Fatalf("expected ErrPaymentNotRefunded, got %v", err)
		}
	})

	t.Run("refund approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCheckoutMocks(ctrl)
		m.intents.EXPECT().GetByID(gomock.Any(), "intent-1").Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusAprovado}, nil)
		m.intents.EXPECT().UpdateStatus(gomock.Any(), "intent-1", entities.PaymentIntentStatusEstornado).Return(entities.PaymentIntent{ID: "intent-1", Status: entities.PaymentIntentStatusEstornado}, nil)

		got, err := m.usecase(nil).Refund(context.Background(), "intent-1")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if got.Status != entities.PaymentIntentStatusEstornado {
			t.Fatalf("expected estornado, got %s", got.Status)
		}
	})
}

// confirmFunc adapts a function to IPaymentConfirmationUseCase for tests that
// only exercise ConfirmPayment.
type confirmFunc func(ctx context.Context, externalReference, gatewayPaymentID, gatewayMethod string) error

func (f confirmFunc) ConfirmPayment(ctx context.Context, externalReference, gatewayPaymentID, gatewayMethod string) error {
	return f(ctx, externalReference, gatewayPaymentID, gatewayMethod)
}

func (confirmFunc) RejectPayment(context.Context, string, string) error { return nil }

func (confirmFunc) ReissueInvoice(context.Context, string) (entities.PaymentIntent, error) {
	return entities.PaymentIntent{}, nil
}
