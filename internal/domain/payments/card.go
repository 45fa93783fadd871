package payments

import (
	"fmt"
	"strings"
)

const (
	ParamCardNumber = "card_number"
	ParamExpiry     = "expiry"
	ParamCVV        = "cvv"
)

// cardHandler covers credit_card and debit_card; both require number, expiry
// and CVV to be present. Processing is simulated, so no Luhn or expiry-date
// check is performed.

type cardHandler struct {
	method Method
}

func (h cardHandler) Method() Method { return h.method }

func (h cardHandler) Handle(amount float64, params Params) (Outcome, error) {
	for _, key := range []string{ParamCardNumber, ParamExpiry, ParamCVV} {
		if strings.TrimSpace(params[key]) == "" {
			return Outcome{}, fmt.Errorf("%w: missing %s", ErrInvalidParams, key)
		}
	}
	return Outcome{
		Method:               h.method,
		Amount:               amount,
		Status:               outcomeSuccess,
		TransactionReference: newTransactionReference("CARD"),
	}, nil
}
