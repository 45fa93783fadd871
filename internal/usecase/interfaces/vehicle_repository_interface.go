package interfaces

import (
	"context"
	"mecstock/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
