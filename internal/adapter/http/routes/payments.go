package routes

import (
	"net/http"

	"uniformes_store/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", paymentHandler.CreatePixPayment)
		payments.POST("/card", paymentHandler.CreateCardPayment)
		// Polling read; never mutates payment state.
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/cancel", paymentHandler.CancelPayment)
		payments.POST("/:id/refund", paymentHandler.RefundPayment)
		payments.POST("/:id/invoice", paymentHandler.ReissueInvoice)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPago)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
