package interfaces

import (
	"context"
	"errors"

	"mecstock/internal/domain/entities"
)

// ErrPaymentAlreadyLinked is returned by CreateAndLink when the order picked
// up a payment_id between the caller's read and the transactional write.
var ErrPaymentAlreadyLinked = errors.New("order already has a linked payment")

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// CreateAndLink writes the payment row and sets the order's payment_id in a
// single TransactWriteItems call, conditioned on the order having no payment
// yet. Two concurrent first settlements of the same order cannot both
// succeed; the loser sees ErrPaymentAlreadyLinked from the repository.

type IPaymentRepository interface {
	CreateAndLink(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
}
