package payments

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const ParamPayerKey = "payer_key"

// pixHandler requires the payer's PIX key and mints an opaque transaction
// reference unique per call.

type pixHandler struct{}

func (pixHandler) Method() Method { return MethodPix }

func (pixHandler) Handle(amount float64, params Params) (Outcome, error) {
	if strings.TrimSpace(params[ParamPayerKey]) == "" {
		return Outcome{}, fmt.Errorf("%w: missing %s", ErrInvalidParams, ParamPayerKey)
	}
	return Outcome{
		Method:               MethodPix,
		Amount:               amount,
		Status:               outcomeSuccess,
		TransactionReference: newTransactionReference("PIX"),
	}, nil
}

func newTransactionReference(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
