package services

import (
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/errs"
)

// AccessPolicy decides which operations an actor may perform on an order.
// It is a pure decision function: each method returns nil when the operation
// is allowed or a ForbiddenError with a display reason when it is not, and
// never mutates state.
//
// Policy summary:
//   - view/delete: the order's owner or any administrator
//   - edit: owner or administrator, except that a cancelled order is locked
//     for everyone and an approved order is locked for non-administrators
//   - change-status: administrators only, and never on an order the
//     administrator owns themselves
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView reports whether actor may read the order.
func (AccessPolicy) CanView(actor *user.User, o *order.Order) error {
	if err := validatePair(actor, o); err != nil {
		return err
	}
	if actor.IsAdmin() || o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return errs.NewForbiddenError("view", "you can only view your own orders")
}

// CanEdit reports whether actor may change the order's fields. The lifecycle
// gates apply here: nobody edits a cancelled order, and only administrators
// edit an approved one.
func (AccessPolicy) CanEdit(actor *user.User, o *order.Order) error {
	if err := validatePair(actor, o); err != nil {
		return err
	}
	if !actor.IsAdmin() && !o.IsOwnedBy(actor.ID()) {
		return errs.NewForbiddenError("edit", "you can only edit your own orders")
	}

	switch o.Status().Name() {
	case status.CancelledName:
		return errs.NewForbiddenError("edit", "a cancelled order cannot be edited")
	case status.ApprovedName:
		if !actor.IsAdmin() {
			return errs.NewForbiddenError("edit", "an approved order cannot be edited")
		}
	}

	return nil
}

// CanDelete reports whether actor may soft-delete the order.
func (AccessPolicy) CanDelete(actor *user.User, o *order.Order) error {
	if err := validatePair(actor, o); err != nil {
		return err
	}
	if actor.IsAdmin() || o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return errs.NewForbiddenError("delete", "you can only delete your own orders")
}

// CanChangeStatus reports whether actor may transition the order's status.
// Only administrators qualify, and an administrator may not change the status
// of their own order.
func (AccessPolicy) CanChangeStatus(actor *user.User, o *order.Order) error {
	if err := validatePair(actor, o); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("change-status", "only administrators can change order status")
	}
	if o.IsOwnedBy(actor.ID()) {
		return errs.NewForbiddenError("change-status", "administrators cannot change the status of their own orders")
	}
	return nil
}

func validatePair(actor *user.User, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	return o.Validate()
}
