// Package order contains the travel order aggregate and its lifecycle state
// machine.
//
// An order is created in the "requested" status and may be moved by an
// administrator to any known status. "approved" and "cancelled" are terminal:
// once an order reaches either of them no further transition is accepted.
// Attempting to cancel an approved order, or to move a cancelled order
// anywhere, fails with an InvalidTransitionError carrying a display message.
//
// Lifecycle operations emit domain events instead of relying on persistence
// dirty-tracking: a successful status change appends a StatusChanged event to
// the aggregate, and the application layer drains those events to produce the
// owner notification and the audit entry inside the same transaction.
package order
