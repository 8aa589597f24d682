package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "uniformes_store/docs" // This will be auto-generated
	"uniformes_store/internal/adapter/http/handlers"
	repository2 "uniformes_store/internal/adapter/persistence/repository"
	"uniformes_store/internal/infrastructure/database"
	"uniformes_store/internal/infrastructure/invoices"
	"uniformes_store/internal/infrastructure/notifications"
	"uniformes_store/internal/infrastructure/payments"
	"uniformes_store/internal/usecase"
	"uniformes_store/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	intentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	counterRepo := repository2.NewFiscalCounterDynamoRepository(ddb)

	sequence := usecase.NewInvoiceSequence(counterRepo)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var renderer interfaces.IInvoiceRenderer
	s3Renderer, err := invoices.NewS3InvoiceRenderer(context.Background())
	if err != nil {
		log.Printf("Invoice renderer not configured: %v", err)
	} else {
		renderer = s3Renderer
	}

	notifier := notifications.NewSMTPNotifierFromEnv()

	confirmationUseCase := usecase.NewPaymentConfirmationUseCase(intentRepo, orderRepo, customerRepo, sequence, renderer, notifier)
	checkoutUseCase := usecase.NewCheckoutUseCase(intentRepo, orderRepo, customerRepo, gateway, confirmationUseCase, notifier)

	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase, confirmationUseCase)
	webhookHandler := handlers.NewWebhookHandler(confirmationUseCase, gateway)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
