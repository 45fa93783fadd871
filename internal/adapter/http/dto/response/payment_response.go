package response

import (
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/domain/payments"
)

// ProcessPaymentResponse is the settlement outcome returned by the router.

type ProcessPaymentResponse struct {
	Status               string  `json:"status"`
	TransactionReference string  `json:"transaction_reference"`
	PaymentID            string  `json:"payment_id"`
	Amount               float64 `json:"amount"`
	Method               string  `json:"method"`
}

func FromSettlement(outcome payments.Outcome, p entities.Payment) ProcessPaymentResponse {
	return ProcessPaymentResponse{
		Status:               outcome.Status,
		TransactionReference: outcome.TransactionReference,
		PaymentID:            p.ID,
		Amount:               outcome.Amount,
		Method:               string(outcome.Method),
	}
}

type PaymentResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
	FinalAmount float64   `json:"final_amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		TotalAmount: p.TotalAmount,
		FinalAmount: p.FinalAmount,
		Method:      p.Method,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
