package routes

import (
	"mecstock/internal/adapter/http/handlers"
	"mecstock/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathPayments      = "/payments"
)

// addOrderRoutes registers the service order lifecycle and the settlement
// endpoints.
func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, paymentHandler *handlers.PaymentHandler) {
	admin := middleware.RequireRole("admin")

	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.PUT("/:id", orderHandler.UpdateServiceOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateServiceOrderStatus)
		orders.GET("/:id/payment", paymentHandler.GetOrderPayment)
		orders.DELETE("/:id", admin, orderHandler.DeleteServiceOrder)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/process", paymentHandler.ProcessPayment)
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}
