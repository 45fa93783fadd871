package interfaces

import (
	"context"
	"errors"

	"mecstock/internal/domain/payments"
)

// ErrNoAcquirerMapping is returned by Authorize for methods the acquirer has
// no counterpart for (cash). The router keeps the simulated reference.
var ErrNoAcquirerMapping = errors.New("method has no acquirer mapping")

// IPaymentGateway abstracts an external acquirer (e.g. Mercado Pago).
//
// The payment router runs fully simulated by default; a gateway is only
// consulted when one is configured, and then only to obtain the transaction
// reference for an already-validated request.
type IPaymentGateway interface {
	Authorize(ctx context.Context, method payments.Method, amount float64, params payments.Params) (transactionReference string, err error)
}
