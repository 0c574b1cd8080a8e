// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence, with side effects (notifications,
// audit entries) staged in the same transaction as the mutation they belong
// to.
package commands

import (
	"context"

	"travelorders/internal/core/ports"
)

// auditDateLayout renders travel dates in audit property snapshots.
const auditDateLayout = "2006-01-02"

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface covering the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusRepoFactory provides access to the status repository within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for order mutations that do not emit
	// notifications: create, field edits, delete. The status repository is
	// included because order creation resolves the "requested" status, and
	// every mutation appends an audit entry.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LifecycleUoW manages transactions for status transitions, which touch
	// every store: the order mutation, the target status lookup, the owner
	// notification, and the audit entry commit together or not at all.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
		NotificationRepoFactory
		AuditRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// StatusUoW manages transactions for status registry mutations.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
		AuditRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
