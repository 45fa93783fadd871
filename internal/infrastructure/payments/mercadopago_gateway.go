package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	domain "mecstock/internal/domain/payments"
	"mecstock/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// mpMethodIDs maps the shop's methods to Mercado Pago payment_method_id
// values. Cash has no acquirer counterpart and is always settled locally.
var mpMethodIDs = map[domain.Method]string{
	domain.MethodCreditCard:   "master",
	domain.MethodDebitCard:    "debmaster",
	domain.MethodBankTransfer: "ted",
	domain.MethodPix:          "pix",
}

// MercadoPagoGateway acquires a real transaction reference for a settlement
// that the router already validated. It is optional wiring: the router runs
// fully simulated without it.

type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, method domain.Method, amount float64, params domain.Params) (string, error) {
	methodID, ok := mpMethodIDs[method]
	if !ok {
		return "", interfaces.ErrNoAcquirerMapping
	}

	req := payment.Request{
		TransactionAmount: amount,
		PaymentMethodID:   methodID,
		Description:       "mecstock settlement",
	}
	if key := params[domain.ParamPayerKey]; key != "" {
		req.Payer = &payment.PayerRequest{Email: key}
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] create failed method=%s err=%v", method, err)
		return "", err
	}

	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("MP-%d", resp.ID), nil
}
