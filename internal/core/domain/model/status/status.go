// Package status contains the OrderStatus entity and the registry rules that
// govern it: built-in statuses are seeded once and protected from deletion,
// admin-defined custom statuses may be created and soft-deleted.
package status

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

// ErrStatusIsNotConstructed is returned when a Status instance was not created
// through one of the factory functions.
var ErrStatusIsNotConstructed = errors.New("Status must be created via NewCustomStatus or RestoreStatus")

// Names of the built-in statuses. They are seeded at startup, referenced by
// the order lifecycle transition rules, and can never be deleted.
const (
	RequestedName = "requested"
	ApprovedName  = "approved"
	CancelledName = "cancelled"
)

// BuiltInNames returns the built-in status names in lifecycle order.
func BuiltInNames() []string {
	return []string{RequestedName, ApprovedName, CancelledName}
}

// IsBuiltInName reports whether name is one of the built-in statuses.
// Matching is case-sensitive, like every status-name comparison in the system.
func IsBuiltInName(name string) bool {
	return name == RequestedName || name == ApprovedName || name == CancelledName
}

// Status is an entity representing one known order status. Orders reference
// exactly one Status at a time; custom statuses exist for categorization and
// reporting only.
type Status struct {
	id       kernel.UUID
	name     string
	isCustom bool

	isConstructed bool
}

// NewCustomStatus creates an admin-defined custom status. The name must be
// non-empty and must not collide with a built-in name; collisions with other
// existing statuses are enforced by the registry's uniqueness check.
func NewCustomStatus(id kernel.UUID, name string) (*Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("status name")
	}
	if IsBuiltInName(name) {
		return nil, errs.NewDuplicateNameError("status", name)
	}

	return &Status{
		id:            id,
		name:          name,
		isCustom:      true,
		isConstructed: true,
	}, nil
}

// RestoreStatus reconstructs a Status from persistence.
func RestoreStatus(id kernel.UUID, name string, isCustom bool) (*Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("status name")
	}

	return &Status{
		id:            id,
		name:          name,
		isCustom:      isCustom,
		isConstructed: true,
	}, nil
}

// ID returns the status identifier.
func (s *Status) ID() kernel.UUID {
	return s.id
}

// Name returns the status name. Names are unique and case-sensitive.
func (s *Status) Name() string {
	return s.name
}

// IsCustom reports whether the status was created by an administrator.
func (s *Status) IsCustom() bool {
	return s.isCustom
}

// IsBuiltIn reports whether the status is one of the seeded built-ins.
func (s *Status) IsBuiltIn() bool {
	return !s.isCustom
}

// EnsureDeletable returns a ProtectedStatusError when the status is a
// built-in. Built-ins are seeded once and never removed.
func (s *Status) EnsureDeletable() error {
	if s.IsBuiltIn() {
		return errs.NewProtectedStatusError(s.name)
	}
	return nil
}

// IsEqual compares two statuses by identifier.
func (s *Status) IsEqual(other *Status) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// Validate ensures the Status was created through a factory function.
func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}
