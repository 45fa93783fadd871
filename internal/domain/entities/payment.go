package entities

import "time"

// PaymentStatus is the settlement state of a payment (pagamento).
//
// "Parcial" exists in the data but is never written by the payment router;
// it can only arrive through an administrative edit.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "Pendente"
	PaymentStatusParcial  PaymentStatus = "Parcial"
	PaymentStatusPago     PaymentStatus = "Pago"
)

// Payment is one monetary settlement for a service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// TotalAmount is fixed from the order budget when the row is created;
// FinalAmount, Method and Status are overwritten on repeat settlements.

type Payment struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"order_id"`
	TotalAmount float64       `json:"total_amount"`
	FinalAmount float64       `json:"final_amount"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
