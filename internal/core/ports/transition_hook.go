package ports

import (
	"context"

	"travelorders/internal/core/domain/model/order"
)

// TransitionHook is invoked after a status transition has been applied and
// its side effects staged, within the same transaction. Deployments plug in
// follow-up behavior here (for example booking a travel record on approval)
// without the state machine knowing about it. A hook error rolls the whole
// transition back.
type TransitionHook interface {
	AfterStatusChange(ctx context.Context, aggregate *order.Order, oldStatusName, newStatusName string) error
}

// NoopTransitionHook is the default hook; it does nothing.
type NoopTransitionHook struct{}

// AfterStatusChange implements TransitionHook.
func (NoopTransitionHook) AfterStatusChange(context.Context, *order.Order, string, string) error {
	return nil
}
