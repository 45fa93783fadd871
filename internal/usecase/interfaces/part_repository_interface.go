package interfaces

import (
	"context"
	"mecstock/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for stock items.
//
// AdjustQuantity applies the delta atomically with a conditional update so
// concurrent consumes cannot drive the quantity negative. It returns the
// zero Part when the condition (existence or sufficient stock) fails.

type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}
