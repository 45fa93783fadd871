package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/domain/payments"
	"mecstock/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound   = errors.New("service order not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
)

// IPaymentUseCase is the payment router: it validates a settlement request,
// dispatches to the method handler and reconciles the order's payment row.
//
// Requested behavior:
//   - deterministic success on valid input, typed error otherwise
//   - exactly one Payment row per order, linked once, mutated on repeat calls
//   - no store mutation on any validation failure

type IPaymentUseCase interface {
	Process(ctx context.Context, orderID string, method payments.Method, amount float64, params payments.Params) (payments.Outcome, entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	registry  *payments.Registry
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IServiceOrderRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IEventPublisher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the router. gateway and publisher may be nil:
// without a gateway the method handlers' simulated references are used,
// without a publisher no events are emitted.
func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher) *PaymentUseCase {
	return &PaymentUseCase{
		registry:  payments.NewRegistry(),
		repo:      repo,
		orderRepo: orderRepo,
		gateway:   gateway,
		publisher: publisher,
	}
}

func (u *PaymentUseCase) Process(ctx context.Context, orderID string, method payments.Method, amount float64, params payments.Params) (payments.Outcome, entities.Payment, error) {
	log.Printf("[payment][usecase] process start order_id=%q method=%s amount=%.2f", orderID, method, amount)

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return payments.Outcome{}, entities.Payment{}, ErrInvalidOrderID
	}
	if !u.registry.Supported(method) {
		log.Printf("[payment][usecase] unsupported method order_id=%s method=%q", orderID, method)
		return payments.Outcome{}, entities.Payment{}, payments.ErrUnsupportedMethod
	}
	if amount <= 0 {
		log.Printf("[payment][usecase] invalid amount order_id=%s amount=%.2f", orderID, amount)
		return payments.Outcome{}, entities.Payment{}, payments.ErrInvalidAmount
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return payments.Outcome{}, entities.Payment{}, err
	}
	if order.ID == "" {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return payments.Outcome{}, entities.Payment{}, ErrOrderNotFound
	}

	outcome, err := u.registry.Dispatch(method, amount, params)
	if err != nil {
		log.Printf("[payment][usecase] dispatch rejected order_id=%s method=%s err=%v", orderID, method, err)
		return payments.Outcome{}, entities.Payment{}, err
	}

	// With an acquirer configured, its reference replaces the simulated one.
	// Methods the acquirer does not carry (cash) settle with the simulated
	// reference.
	if u.gateway != nil {
		ref, err := u.gateway.Authorize(ctx, method, amount, params)
		switch {
		case errors.Is(err, interfaces.ErrNoAcquirerMapping):
			log.Printf("[payment][usecase] no acquirer mapping, keeping local reference order_id=%s method=%s", orderID, method)
		case err != nil:
			log.Printf("[payment][usecase] gateway authorize failed order_id=%s err=%v", orderID, err)
			return payments.Outcome{}, entities.Payment{}, err
		default:
			outcome.TransactionReference = ref
		}
	}

	settled, err := u.settle(ctx, order, outcome)
	if err != nil {
		return payments.Outcome{}, entities.Payment{}, err
	}

	u.publishSettled(ctx, order.ID, settled, outcome)

	log.Printf("[payment][usecase] process success order_id=%s payment_id=%s method=%s amount=%.2f ref=%s",
		orderID, settled.ID, method, amount, outcome.TransactionReference)
	return outcome, settled, nil
}

// settle creates or updates the order's single payment row. First settlement
// goes through CreateAndLink (transactional put + conditional link); if a
// concurrent call won that race the loser falls back to the update path.
func (u *PaymentUseCase) settle(ctx context.Context, order entities.ServiceOrder, outcome payments.Outcome) (entities.Payment, error) {
	status := entities.PaymentStatusPendente
	if outcome.Status == "success" {
		status = entities.PaymentStatusPago
	}
	now := time.Now().UTC()

	if order.PaymentID == "" {
		p := entities.Payment{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			TotalAmount: order.Budget,
			FinalAmount: outcome.Amount,
			Method:      string(outcome.Method),
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created, err := u.repo.CreateAndLink(ctx, p)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrPaymentAlreadyLinked) {
			log.Printf("[payment][usecase] create-and-link failed order_id=%s err=%v", order.ID, err)
			return entities.Payment{}, err
		}
		// Lost the first-settlement race; reload to pick up the winner's link.
		log.Printf("[payment][usecase] payment already linked, updating existing order_id=%s", order.ID)
		reloaded, err := u.orderRepo.GetByID(ctx, order.ID)
		if err != nil {
			return entities.Payment{}, err
		}
		order = reloaded
	}

	existing, err := u.repo.GetByID(ctx, order.PaymentID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading payment order_id=%s payment_id=%s err=%v", order.ID, order.PaymentID, err)
		return entities.Payment{}, err
	}
	if existing.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	existing.FinalAmount = outcome.Amount
	existing.Method = string(outcome.Method)
	existing.Status = status
	existing.UpdatedAt = now
	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		log.Printf("[payment][usecase] payment update failed order_id=%s payment_id=%s err=%v", order.ID, existing.ID, err)
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		// Row deleted between the read above and the conditional update.
		log.Printf("[payment][usecase] payment vanished during update order_id=%s payment_id=%s", order.ID, existing.ID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, nil
}

func (u *PaymentUseCase) publishSettled(ctx context.Context, orderID string, p entities.Payment, outcome payments.Outcome) {
	if u.publisher == nil {
		return
	}
	event := map[string]any{
		"order_id":              orderID,
		"payment_id":            p.ID,
		"method":                string(outcome.Method),
		"amount":                outcome.Amount,
		"status":                string(p.Status),
		"transaction_reference": outcome.TransactionReference,
	}
	if err := u.publisher.Publish(ctx, "payment.settled", event); err != nil {
		// Settlement already committed; the event is best-effort.
		log.Printf("[payment][usecase] publish failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}

	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
