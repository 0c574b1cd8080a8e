package errs

import (
	"fmt"
)

// Sentinel errors for the workflow business-rule failures. All of them are
// expected errors: handlers return them to the caller, never panic.
var (
	ErrForbidden         = fmt.Errorf("forbidden")
	ErrInvalidTransition = fmt.Errorf("invalid status transition")
	ErrDuplicateName     = fmt.Errorf("duplicate name")
	ErrProtectedStatus   = fmt.Errorf("protected status")
	ErrConflict          = fmt.Errorf("conflict")
)

// ForbiddenError indicates that the acting user lacks the rights to perform
// Action on the entity in question. Reason carries a human-readable message
// suitable for direct display.
type ForbiddenError struct {
	Action string
	Reason string
}

// NewForbiddenError creates a ForbiddenError for the given action and reason.
func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError indicates that a status change violates the order
// lifecycle transition rules. From and To carry the status names involved;
// Reason is the display message mandated by the lifecycle.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected From -> To move.
func NewInvalidTransitionError(from, to, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidTransition, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DuplicateNameError indicates a uniqueness violation on a name attribute
// (case-sensitive exact match).
type DuplicateNameError struct {
	ParamName string
	Name      string
	Cause     error
}

// NewDuplicateNameError creates a DuplicateNameError without a cause.
func NewDuplicateNameError(paramName, name string) *DuplicateNameError {
	return &DuplicateNameError{ParamName: paramName, Name: name}
}

// NewDuplicateNameErrorWithCause creates a DuplicateNameError wrapping the
// storage error that detected the collision.
func NewDuplicateNameErrorWithCause(paramName, name string, cause error) *DuplicateNameError {
	return &DuplicateNameError{ParamName: paramName, Name: name, Cause: cause}
}

func (e *DuplicateNameError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %q already exists (cause: %s)", ErrDuplicateName, e.ParamName, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s: %s %q already exists", ErrDuplicateName, e.ParamName, e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// ProtectedStatusError indicates an attempt to delete a built-in order status.
type ProtectedStatusError struct {
	Name string
}

// NewProtectedStatusError creates a ProtectedStatusError for the named status.
func NewProtectedStatusError(name string) *ProtectedStatusError {
	return &ProtectedStatusError{Name: name}
}

func (e *ProtectedStatusError) Error() string {
	return fmt.Sprintf("%s: built-in status %q cannot be deleted", ErrProtectedStatus, e.Name)
}

func (e *ProtectedStatusError) Unwrap() error {
	return ErrProtectedStatus
}

// ConflictError indicates a lost-update race: the entity was modified
// concurrently between read and write.
type ConflictError struct {
	ParamName string
	ID        any
}

// NewConflictError creates a ConflictError for the contended entity.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s was modified concurrently", ErrConflict, e.ParamName, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
