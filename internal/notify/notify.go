// Package notify pushes newly placed orders to the kitchen's chat channels.
// Delivery is best-effort: a failed notification is logged, never surfaced
// to the customer placing the order.
package notify

import (
	"context"
	"log"

	"github.com/solvelysaid/orderdesk/internal/models"
)

// Notifier announces a placed order on some channel.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *models.Order) error
}

// Multi fans an order out to several notifiers. Failures are logged and
// swallowed so one broken channel never blocks the others.
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a fan-out notifier. A nil or empty list is valid and
// results in a no-op.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// OrderPlaced delivers the order to every configured channel.
func (m *Multi) OrderPlaced(ctx context.Context, o *models.Order) error {
	for _, n := range m.notifiers {
		if err := n.OrderPlaced(ctx, o); err != nil {
			log.Printf("notify: order %s: %v", o.ID, err)
		}
	}
	return nil
}
