package order

import (
	"travelorders/internal/core/domain/model/kernel"
)

// DomainEvent is implemented by events emitted from order lifecycle
// operations. The application layer drains events after a successful
// operation and routes them to the notification and audit consumers.
type DomainEvent interface {
	// EventName returns a stable machine-readable event label.
	EventName() string
}

// StatusChanged is emitted when an order moves to a new status. It carries an
// immutable snapshot of everything the side-effect pipeline needs, so
// consumers never reach back into the aggregate.
type StatusChanged struct {
	OrderID       kernel.UUID
	OwnerID       kernel.UUID
	Destination   string
	OldStatusName string
	NewStatusName string
}

// EventName implements DomainEvent.
func (StatusChanged) EventName() string {
	return "order.status_changed"
}
