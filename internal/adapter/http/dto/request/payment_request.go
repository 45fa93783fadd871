package request

// ProcessPaymentRequest is the payload for the settlement route. Params keys
// depend on the method: card_number/expiry/cvv for cards,
// account_number/bank_code for bank transfers, payer_key for pix.

type ProcessPaymentRequest struct {
	OrderID string            `json:"order_id" binding:"required"`
	Method  string            `json:"method" binding:"required"`
	Amount  float64           `json:"amount" binding:"required"`
	Params  map[string]string `json:"params"`
}
