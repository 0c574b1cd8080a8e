// Package notification contains the user-scoped notification aggregate and
// the content mapping that turns an order status change into a typed,
// renderable message for the order's owner.
package notification

import (
	"errors"
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through one of the factory functions.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewStatusChangeNotification or RestoreNotification",
)

// Type tags a notification for rendering by the presentation layer.
type Type string

const (
	TypeApproved  Type = "approved"
	TypeCancelled Type = "cancelled"
	TypePending   Type = "pending"
	TypeInfo      Type = "info"
)

// Payload carries the order attributes captured at the moment the
// notification was produced.
type Payload struct {
	OrderID       kernel.UUID
	Destination   string
	OldStatusName string
	NewStatusName string
}

// Notification is an aggregate exclusively owned by its recipient user. It is
// created unread and flipped to read at most once; re-marking is a no-op.
type Notification struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	kind      Type
	title     string
	message   string
	payload   Payload
	readAt    *time.Time
	relayedAt *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewStatusChangeNotification builds the notification for an order status
// change. Title, message, and type are derived from the new status name:
// the built-in approved/cancelled/requested names map to dedicated copy,
// anything else falls back to a generic "status updated" message.
func NewStatusChangeNotification(
	id kernel.UUID,
	ownerID kernel.UUID,
	orderID kernel.UUID,
	destination string,
	oldStatusName string,
	newStatusName string,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if destination == "" {
		return nil, errs.NewValueIsRequiredError("destination")
	}
	if newStatusName == "" {
		return nil, errs.NewValueIsRequiredError("new status name")
	}

	title, message, kind := statusChangeContent(destination, newStatusName)

	return &Notification{
		id:      id,
		ownerID: ownerID,
		kind:    kind,
		title:   title,
		message: message,
		payload: Payload{
			OrderID:       orderID,
			Destination:   destination,
			OldStatusName: oldStatusName,
			NewStatusName: newStatusName,
		},
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	ownerID kernel.UUID,
	kind Type,
	title string,
	message string,
	payload Payload,
	readAt *time.Time,
	relayedAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		ownerID:       ownerID,
		kind:          kind,
		title:         title,
		message:       message,
		payload:       payload,
		readAt:        readAt,
		relayedAt:     relayedAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// statusChangeContent maps the new status name to display copy and a type tag.
func statusChangeContent(destination, newStatusName string) (title, message string, kind Type) {
	switch newStatusName {
	case status.ApprovedName:
		return "Order Approved!",
			fmt.Sprintf("Your travel order to %s was approved.", destination),
			TypeApproved
	case status.CancelledName:
		return "Order Cancelled",
			fmt.Sprintf("Your travel order to %s was cancelled.", destination),
			TypeCancelled
	case status.RequestedName:
		return "Order Under Review",
			fmt.Sprintf("Your travel order to %s is under review.", destination),
			TypePending
	default:
		return "Order Status Updated",
			fmt.Sprintf("The status of your travel order to %s changed to %s.", destination, newStatusName),
			TypeInfo
	}
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OwnerID returns the recipient user's identifier.
func (n *Notification) OwnerID() kernel.UUID {
	return n.ownerID
}

// BelongsTo reports whether the notification is owned by the given user.
func (n *Notification) BelongsTo(userID kernel.UUID) bool {
	return n.ownerID.IsEqual(userID)
}

// Type returns the type tag.
func (n *Notification) Type() Type {
	return n.kind
}

// Title returns the display title.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the display message body.
func (n *Notification) Message() string {
	return n.message
}

// Payload returns the captured order attributes.
func (n *Notification) Payload() Payload {
	return n.payload
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

// ReadAt returns the read timestamp, or nil while unread.
func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

// MarkRead sets the read timestamp. Idempotent: marking an already-read
// notification keeps the original timestamp and reports no change.
func (n *Notification) MarkRead(at time.Time) (changed bool) {
	if n.readAt != nil {
		return false
	}
	n.readAt = &at
	return true
}

// IsRelayed reports whether the external (email-equivalent) message for this
// notification has been sent.
func (n *Notification) IsRelayed() bool {
	return n.relayedAt != nil
}

// RelayedAt returns the relay timestamp, or nil while pending.
func (n *Notification) RelayedAt() *time.Time {
	return n.relayedAt
}

// MarkRelayed records that the external message was sent. Idempotent.
func (n *Notification) MarkRelayed(at time.Time) (changed bool) {
	if n.relayedAt != nil {
		return false
	}
	n.relayedAt = &at
	return true
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Validate ensures the Notification was created through a factory function.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}
