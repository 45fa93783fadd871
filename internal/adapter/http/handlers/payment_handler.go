package handlers

import (
	"errors"
	"log"
	request "mecstock/internal/adapter/http/dto/request"
	response "mecstock/internal/adapter/http/dto/response"
	"mecstock/internal/domain/payments"
	"mecstock/internal/usecase"
	"mecstock/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for order settlements.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ProcessPayment settles a service order with one of the supported methods.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] process invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process start order_id=%s method=%s", payload.OrderID, payload.Method)

	outcome, payment, err := h.usecase.Process(c.Request.Context(), payload.OrderID, payments.Method(payload.Method), payload.Amount, payments.Params(payload.Params))
	if err != nil {
		log.Printf("[payment][handler] process failed order_id=%s method=%s err=%v", payload.OrderID, payload.Method, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success order_id=%s payment_id=%s ref=%s", payload.OrderID, payment.ID, outcome.TransactionReference)

	c.JSON(http.StatusOK, response.FromSettlement(outcome, payment))
}

// GetPayment returns a payment by its id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] get start payment_id=%s", id)

	payment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// GetOrderPayment returns the payment linked to a service order.
func (h *PaymentHandler) GetOrderPayment(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[payment][handler] get-by-order start order_id=%s", orderID)

	payment, err := h.usecase.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get-by-order failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, payments.ErrUnsupportedMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, payments.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, payments.ErrInvalidParams):
		return pkg.NewDomainErrorSimple("INVALID_PARAMS", "Invalid payment method parameters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
