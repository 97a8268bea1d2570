// Package user contains the User aggregate: identity, hashed credential and role.
//
// The credential is stored as a bcrypt hash, never as plain text. Hashing and
// verification happen in the application layer; the aggregate treats the hash
// as opaque.
package user

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// RoleCustomer can browse the menu, place orders and view their own orders.
	RoleCustomer Role = "customer"

	// RoleManager can additionally view all orders and the delivery agents.
	RoleManager Role = "manager"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Role determines what a logged-in user is allowed to see.
// A user's role is fixed at registration and never changes.
type Role string

// Validate checks that the role is a known one.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleManager {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the persisted representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is a registered account.
type User struct {
	// id is assigned by the store on first persistence; 0 until then
	id           int64
	username     string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewUser creates a user with an already-hashed credential.
func NewUser(username, passwordHash string, role Role) (*User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a user from persistent storage.
func RestoreUser(id int64, username, passwordHash string, role Role) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid user id", id))
	}

	u, err := NewUser(username, passwordHash, role)
	if err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the user was created via a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the store-assigned user id, or 0 before first persistence.
func (u *User) ID() int64 {
	return u.id
}

// Username returns the unique username.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the opaque bcrypt hash of the credential.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsManager reports whether the user may access manager projections.
func (u *User) IsManager() bool {
	return u.role == RoleManager
}

// AssignID attaches the store-assigned id to a freshly persisted user.
func (u *User) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid user id", id))
	}
	if u.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("user already has id %d", u.id))
	}

	u.id = id
	return nil
}
