package user

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Role distinguishes the two sides of the marketplace plus administrators.
type Role int

const (
	RoleUnknown Role = iota

	// RoleWholesaler is the seller side: owns products, fulfils orders.
	RoleWholesaler

	// RoleRetailer is the buyer side: fills carts, places orders.
	RoleRetailer

	// RoleAdmin has unrestricted access to administrative operations.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleWholesaler: "WHOLESALER",
		RoleRetailer:   "RETAILER",
		RoleAdmin:      "ADMIN",
	}
}

// RoleFromString parses the wire form of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role " + s)
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// User is an account on either side of the marketplace. The email is unique
// and doubles as the caller identity resolved by the identity layer; the
// core trusts it and never re-authenticates.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	active       bool

	isConstructed bool
}

// NewUser creates an active user account.
func NewUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("email")
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name, email, passwordHash string, role Role, active bool) (*User, error) {
	u, err := NewUser(id, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}
	u.active = active
	return u, nil
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.active }

// HasEmail compares emails case-insensitively, matching how the identity
// layer resolves callers.
func (u *User) HasEmail(email string) bool {
	return strings.EqualFold(u.email, email)
}
