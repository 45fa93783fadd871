package interfaces

import (
	"context"
	"mecstock/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// UpdateStatus touches only the status attribute; Update never rewrites
// payment_id, which is owned by the payment settlement transaction.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}
