package routes

import (
	"log"
	_ "mecstock/docs" // This will be auto-generated
	"mecstock/internal/adapter/http/handlers"
	"mecstock/internal/adapter/http/middleware"
	repository2 "mecstock/internal/adapter/persistence/repository"
	"mecstock/internal/infrastructure/cache"
	"mecstock/internal/infrastructure/cep"
	"mecstock/internal/infrastructure/database"
	"mecstock/internal/infrastructure/events"
	"mecstock/internal/infrastructure/payments"
	"mecstock/internal/usecase"
	"mecstock/internal/usecase/interfaces"
	"os"
	"strconv"

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
	rdb := cache.ConnectRedis()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	mechanicRepo := repository2.NewMechanicDynamoRepository(ddb)
	partRepo := repository2.NewPartDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	if token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN"); token != "" {
		mpGateway, err := payments.NewMercadoPagoGateway(token)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			paymentGateway = mpGateway
		}
	}

	var publisher interfaces.IEventPublisher
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		pub, err := events.NewAMQPPublisher(amqpURL, getenvDefault("AMQP_EXCHANGE", "mecstock.events"))
		if err != nil {
			log.Printf("AMQP publisher not configured: %v", err)
		} else {
			publisher = pub
		}
	}

	cepGateway := cep.NewViaCEPClient(rdb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, cepGateway)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo)
	partUseCase := usecase.NewPartUseCase(partRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, paymentRepo, publisher)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, publisher)
	addressUseCase := usecase.NewAddressUseCase(cepGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	addressHandler := handlers.NewAddressHandler(addressUseCase)

	v1 := router.Group("/v1")
	v1.Use(middleware.Auth())
	addPingRoutes(v1)
	addShopRoutes(v1, customerHandler, vehicleHandler, mechanicHandler, partHandler, addressHandler)
	addOrderRoutes(v1, orderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
