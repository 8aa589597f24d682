package handlers

import (
	"errors"
	"log"
	"net/http"

	"uniformes_store/internal/adapter/http/dto/request"
	"uniformes_store/internal/adapter/http/dto/response"
	"uniformes_store/internal/usecase"
	"uniformes_store/internal/usecase/interfaces"
	"uniformes_store/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for checkout payments.

type PaymentHandler struct {
	checkout     usecase.ICheckoutUseCase
	confirmation usecase.IPaymentConfirmationUseCase
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, confirmation usecase.IPaymentConfirmationUseCase) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, confirmation: confirmation}
}

// CreatePixPayment godoc
// @Summary      Create a PIX payment for one or more orders
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment body request.PixCheckoutRequest true "checkout"
// @Success      201 {object} response.PixCheckoutResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments/pix [post]
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var req request.PixCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] pix invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.checkout.CreatePixCheckout(c.Request.Context(), usecase.PixCheckoutInput{
		CustomerID:  req.CustomerID,
		OrderIDs:    req.OrderIDs,
		TotalCents:  req.TotalCents,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("[payment][handler] pix create failed customer_id=%s err=%v", req.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pix create success intent_id=%s", result.Intent.ID)

	c.JSON(http.StatusCreated, response.PixCheckoutResponse{
		PaymentIntentResponse: response.FromPaymentIntent(result.Intent),
		QRCode:                result.QRCode,
		QRCodeBase64:          result.QRCodeBase64,
		TicketURL:             result.TicketURL,
	})
}

// CreateCardPayment godoc
// @Summary      Create a credit card payment for one or more orders
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment body request.CardCheckoutRequest true "checkout"
// @Success      201 {object} response.PaymentIntentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments/card [post]
func (h *PaymentHandler) CreateCardPayment(c *gin.Context) {
	var req request.CardCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] card invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	intent, err := h.checkout.CreateCardCheckout(c.Request.Context(), usecase.CardCheckoutInput{
		PixCheckoutInput: usecase.PixCheckoutInput{
			CustomerID:  req.CustomerID,
			OrderIDs:    req.OrderIDs,
			TotalCents:  req.TotalCents,
			Description: req.Description,
		},
		CardToken:       req.CardToken,
		PaymentMethodID: req.PaymentMethodID,
		Installments:    req.Installments,
	})
	if err != nil {
		log.Printf("[payment][handler] card create failed customer_id=%s err=%v", req.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] card create success intent_id=%s status=%s", intent.ID, intent.Status)

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

// GetPayment godoc
// @Summary      Get current payment state (client polling)
// @Tags         payments
// @Produce      json
// @Param        id path string true "payment intent id"
// @Success      200 {object} response.PaymentIntentResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	intent, err := h.checkout.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

// CancelPayment abandons a still-pending checkout.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] cancel start intent_id=%s", id)

	intent, err := h.checkout.Cancel(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] cancel failed intent_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

// RefundPayment marks an approved payment as refunded.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] refund start intent_id=%s", id)

	intent, err := h.checkout.Refund(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] refund failed intent_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

// ReissueInvoice godoc
// @Summary      Regenerate the invoice document for an approved payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "payment intent id"
// @Success      200 {object} response.PaymentIntentResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /payments/{id}/invoice [post]
func (h *PaymentHandler) ReissueInvoice(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] invoice reissue start intent_id=%s", id)

	intent, err := h.confirmation.ReissueInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] invoice reissue failed intent_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] invoice reissue success intent_id=%s number=%s", id, intent.Invoice.Number)

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrNoOrders),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCardToken),
		errors.Is(err, usecase.ErrInvalidInstallments):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Total does not match order sum", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order is not pending payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentIntentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotRefunded):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_REFUNDABLE", "Only approved payments can be refunded", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceGeneration):
		return pkg.NewDomainError("INVOICE_GENERATION_FAILED", "Payment approved but invoice generation failed", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrGatewayUnexpectedStatus),
		errors.Is(err, interfaces.ErrGatewayReferenceMismatch):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider returned an unusable response", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
