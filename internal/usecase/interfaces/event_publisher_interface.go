package interfaces

import "context"

// IEventPublisher publishes integration events (payment.settled,
// service_order.status_changed) to the broker. Implementations must be safe
// to skip: callers treat a nil publisher as "events disabled".
type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, data any) error
}
