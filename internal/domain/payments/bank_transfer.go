package payments

import (
	"fmt"
	"strings"
)

const (
	ParamAccountNumber = "account_number"
	ParamBankCode      = "bank_code"
)

// bankTransferHandler requires a non-empty account number and bank code.

type bankTransferHandler struct{}

func (bankTransferHandler) Method() Method { return MethodBankTransfer }

func (bankTransferHandler) Handle(amount float64, params Params) (Outcome, error) {
	for _, key := range []string{ParamAccountNumber, ParamBankCode} {
		if strings.TrimSpace(params[key]) == "" {
			return Outcome{}, fmt.Errorf("%w: missing %s", ErrInvalidParams, key)
		}
	}
	return Outcome{
		Method:               MethodBankTransfer,
		Amount:               amount,
		Status:               outcomeSuccess,
		TransactionReference: newTransactionReference("BANK"),
	}, nil
}
