// Package user contains the read-only user entity. The workflow core never
// mutates users; it only resolves them through the user directory to identify
// actors and order owners.
package user

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser")

// User is an actor in the workflow: either a regular user who owns travel
// orders or an administrator who approves and cancels them.
type User struct {
	id      kernel.UUID
	name    string
	email   string
	isAdmin bool

	isConstructed bool
}

// RestoreUser reconstructs a user from the directory.
func RestoreUser(id kernel.UUID, name, email string, isAdmin bool) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("user name")
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		isAdmin:       isAdmin,
		isConstructed: true,
	}, nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's current display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address; may be empty.
func (u *User) Email() string {
	return u.email
}

// IsAdmin reports whether the user is an administrator.
func (u *User) IsAdmin() bool {
	return u.isAdmin
}

// Validate ensures the User was created through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}
