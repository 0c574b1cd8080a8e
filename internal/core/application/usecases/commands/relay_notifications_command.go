package commands

import (
	"errors"

	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

// RelayNotificationsCommand triggers delivery of the external copies of
// pending notifications. This batch operation is run periodically by the job
// scheduler.
//
// Example:
//
//	cmd, _ := NewRelayNotificationsCommand(100)
//	handler := NewRelayNotificationsCommandHandler(uowFactory, users, mailer, clock)
//
//	relayed, err := handler.Handle(ctx, cmd)
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

var (
	ErrRelayNotificationsCommandIsNotConstructed = errors.New(
		"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
	)
)

// NewRelayNotificationsCommand creates a relay command capped at limit
// notifications per run.
func NewRelayNotificationsCommand(limit int) (RelayNotificationsCommand, error) {
	if limit <= 0 {
		return RelayNotificationsCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxRelayBatchSize)
	}
	if limit > maxRelayBatchSize {
		return RelayNotificationsCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxRelayBatchSize)
	}

	return RelayNotificationsCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// maxRelayBatchSize bounds a single relay run so a backlog drains in chunks
// instead of one oversized mail burst.
const maxRelayBatchSize = 1000

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

// Limit returns the maximum number of notifications to relay in this run.
func (c RelayNotificationsCommand) Limit() int {
	return c.limit
}
