package payments

import "errors"

// Method is the closed set of supported payment methods. Anything else is
// rejected with ErrUnsupportedMethod.

type Method string

const (
	MethodCash         Method = "cash"
	MethodCreditCard   Method = "credit_card"
	MethodDebitCard    Method = "debit_card"
	MethodBankTransfer Method = "bank_transfer"
	MethodPix          Method = "pix"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidParams     = errors.New("invalid payment method parameters")
)

// Params carries the method-specific fields of a settlement request
// (card number, bank code, pix key...). Keys a method does not require are
// ignored.
type Params map[string]string

// Outcome is the normalized settlement result. Status is always "success":
// handlers either satisfy their parameter contract and succeed
// deterministically, or return an error and produce no outcome.
type Outcome struct {
	Method               Method  `json:"method"`
	Amount               float64 `json:"amount"`
	Status               string  `json:"status"`
	TransactionReference string  `json:"transaction_reference"`
}

const outcomeSuccess = "success"

// Handler validates and settles one payment method. Handlers are pure: no
// I/O, no shared state, deterministic success on valid input.
type Handler interface {
	Method() Method
	Handle(amount float64, params Params) (Outcome, error)
}
