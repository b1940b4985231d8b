package access

import (
	"errors"
	"fmt"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// maxDisplayNameLength bounds the human-readable name attached to an account.
const maxDisplayNameLength = 64

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount factory method.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account is the aggregate root for access control. It holds the set of roles
// granted to an address plus an optional display name.
//
// Account follows these invariants:
//   - Must have a valid address
//   - Role grants and revocations are idempotent
//   - Can only be created through the NewAccount constructor
type Account struct {
	address     kernel.Address
	displayName string
	roles       map[Role]bool

	isConstructed bool
}

// NewAccount creates an Account for the given address with no roles and no
// display name.
func NewAccount(address kernel.Address) (*Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		address:       address,
		roles:         make(map[Role]bool),
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an Account from persistence. The roles slice
// may contain duplicates; they collapse into the role set.
func RestoreAccount(address kernel.Address, displayName string, roles []Role) (*Account, error) {
	account, err := NewAccount(address)
	if err != nil {
		return nil, err
	}

	account.displayName = displayName
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return nil, err
		}
		account.roles[role] = true
	}

	return account, nil
}

// Validate ensures the Account instance was properly constructed through
// NewAccount or RestoreAccount.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// Address returns the account's address.
func (a *Account) Address() kernel.Address {
	return a.address
}

// DisplayName returns the optional human-readable name. Empty when unset.
func (a *Account) DisplayName() string {
	return a.displayName
}

// Roles returns the granted roles in declaration order.
func (a *Account) Roles() []Role {
	roles := make([]Role, 0, len(a.roles))
	for _, role := range AllRoles() {
		if a.roles[role] {
			roles = append(roles, role)
		}
	}
	return roles
}

// HasRole reports whether the role has been granted to this account.
// Admin is not implied here; superset checks belong to the authorizer.
func (a *Account) HasRole(role Role) bool {
	return a.roles[role]
}

// Grant adds a role to the account. Granting a role that is already held is a
// no-op: callers cannot distinguish "granted" from "was already granted", and
// that is deliberate.
//
// Returns the role-set delta: true when the grant changed the account.
func (a *Account) Grant(role Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}

	if a.roles[role] {
		return false, nil
	}
	a.roles[role] = true
	return true, nil
}

// Revoke removes a role from the account. Revoking an unheld role is a no-op.
//
// Returns the role-set delta: true when the revocation changed the account.
func (a *Account) Revoke(role Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}

	if !a.roles[role] {
		return false, nil
	}
	delete(a.roles, role)
	return true, nil
}

// SetDisplayName sets the human-readable name for the account.
// An empty name clears it.
func (a *Account) SetDisplayName(name string) error {
	if len(name) > maxDisplayNameLength {
		return errs.NewValueIsInvalidErrorWithCause("displayName",
			fmt.Errorf("length %d exceeds maximum %d", len(name), maxDisplayNameLength))
	}

	a.displayName = name
	return nil
}
