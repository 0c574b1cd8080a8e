// Package audit contains the immutable audit trail entry. Every mutation in
// the system appends exactly one entry recording the causing actor, the
// subject, an action label, and a snapshot of the changed attributes. Entries
// are never updated or deleted.
package audit

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// one of the factory functions.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// SubjectType tags the kind of entity an audit entry refers to. Modeled as an
// explicit tagged pair with the subject ID rather than a dynamically-typed
// relation.
type SubjectType string

const (
	SubjectOrder        SubjectType = "order"
	SubjectOrderStatus  SubjectType = "order_status"
	SubjectNotification SubjectType = "notification"
)

// Action labels used across the workflow. Free-form labels are permitted, but
// the lifecycle operations stick to this fixed vocabulary.
const (
	ActionOrderCreated        = "Created order"
	ActionOrderUpdated        = "Updated order"
	ActionOrderStatusUpdated  = "Updated order status"
	ActionOrderDeleted        = "Deleted order"
	ActionCustomStatusCreated = "Created custom order status"
	ActionCustomStatusDeleted = "Deleted custom order status"
)

// Entry is one immutable audit record. It references, but does not own, its
// subject and the causing actor. There are no mutating methods: once built,
// an entry only travels to the append-only store.
type Entry struct {
	id          kernel.UUID
	actorID     kernel.UUID
	subjectType SubjectType
	subjectID   kernel.UUID
	action      string
	properties  map[string]any
	createdAt   time.Time

	isConstructed bool
}

// NewEntry creates an audit entry. properties is the attribute snapshot
// captured at the moment of mutation; it is copied so later changes by the
// caller cannot alter the record.
func NewEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	subjectType SubjectType,
	subjectID kernel.UUID,
	action string,
	properties map[string]any,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), actorID.Validate(), subjectID.Validate()); err != nil {
		return nil, err
	}
	if subjectType == "" {
		return nil, errs.NewValueIsRequiredError("subject type")
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}

	return &Entry{
		id:            id,
		actorID:       actorID,
		subjectType:   subjectType,
		subjectID:     subjectID,
		action:        action,
		properties:    copyProperties(properties),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	subjectType SubjectType,
	subjectID kernel.UUID,
	action string,
	properties map[string]any,
	createdAt time.Time,
) (*Entry, error) {
	return NewEntry(id, actorID, subjectType, subjectID, action, properties, createdAt)
}

func copyProperties(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ActorID returns the identifier of the user who caused the mutation.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// SubjectType returns the kind of entity the entry refers to.
func (e *Entry) SubjectType() SubjectType {
	return e.subjectType
}

// SubjectID returns the identifier of the referenced entity.
func (e *Entry) SubjectID() kernel.UUID {
	return e.subjectID
}

// Action returns the action label.
func (e *Entry) Action() string {
	return e.action
}

// Properties returns a copy of the attribute snapshot.
func (e *Entry) Properties() map[string]any {
	return copyProperties(e.properties)
}

// CreatedAt returns the moment the mutation was recorded.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Validate ensures the Entry was created through a factory function.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}
