package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder            = errors.New("invalid service order")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
)

// IServiceOrderUseCase exposes service order operations.
//
// Status changes go through UpdateStatus only, which enforces the lifecycle
// table; Update rewrites descriptive fields and never touches status or
// payment linkage.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

type ServiceOrderUseCase struct {
	repo        interfaces.IServiceOrderRepository
	paymentRepo interfaces.IPaymentRepository
	publisher   interfaces.IEventPublisher
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, paymentRepo interfaces.IPaymentRepository, publisher interfaces.IEventPublisher) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, paymentRepo: paymentRepo, publisher: publisher}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.CustomerID = strings.TrimSpace(o.CustomerID)
	o.VehicleID = strings.TrimSpace(o.VehicleID)
	o.MechanicID = strings.TrimSpace(o.MechanicID)
	if o.CustomerID == "" || o.VehicleID == "" || o.MechanicID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrder
	}
	if o.Budget <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrder
	}
	if o.HomeService && (o.ServiceAddress == nil || o.ServiceAddress.IsZero()) {
		return entities.ServiceOrder{}, ErrInvalidOrder
	}
	if !o.HomeService {
		o.ServiceAddress = nil
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.Status = entities.OrderStatusCadastrado
	o.PaymentID = ""
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.EntryDate.IsZero() {
		o.EntryDate = now
	}
	return u.repo.Create(ctx, o)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidOrder
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if o.Budget <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrder
	}

	current, err := u.GetByID(ctx, o.ID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// Status and payment linkage are owned by UpdateStatus / the router.
	o.Status = current.Status
	o.PaymentID = current.PaymentID
	o.CreatedAt = current.CreatedAt
	o.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, o)
}

func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		log.Printf("[order][usecase] transition rejected order_id=%s from=%q to=%q", id, current.Status, status)
		return entities.ServiceOrder{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	if u.publisher != nil {
		event := map[string]any{"order_id": id, "from": string(current.Status), "to": string(status)}
		if err := u.publisher.Publish(ctx, "service_order.status_changed", event); err != nil {
			log.Printf("[order][usecase] publish failed order_id=%s err=%v", id, err)
		}
	}
	log.Printf("[order][usecase] status updated order_id=%s from=%q to=%q", id, current.Status, status)
	return updated, nil
}

// Delete removes the order and cascades the linked payment, if any.
func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.PaymentID != "" {
		if err := u.paymentRepo.Delete(ctx, current.PaymentID); err != nil {
			log.Printf("[order][usecase] cascade payment delete failed order_id=%s payment_id=%s err=%v", id, current.PaymentID, err)
			return err
		}
	}
	return u.repo.Delete(ctx, current.ID)
}
