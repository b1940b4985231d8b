package queries

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrHasRoleQueryIsNotConstructed = errors.New(
	"HasRoleQuery must be created via NewHasRoleQuery constructor",
)

// HasRoleQuery checks whether an account holds a role.
type HasRoleQuery struct {
	address string
	role    access.Role

	guard guard.ConstructorGuard
}

// NewHasRoleQuery creates a query for the given address and role name.
func NewHasRoleQuery(address string, roleName string) (HasRoleQuery, error) {
	if address == "" {
		return HasRoleQuery{}, errs.NewValueIsRequiredError("address")
	}

	role, err := access.RoleFromString(roleName)
	if err != nil {
		return HasRoleQuery{}, err
	}

	return HasRoleQuery{
		address: address,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q HasRoleQuery) Validate() error {
	return q.guard.Validate(ErrHasRoleQueryIsNotConstructed)
}

// Address returns the account address.
func (q HasRoleQuery) Address() string {
	return q.address
}

// Role returns the role being checked.
func (q HasRoleQuery) Role() access.Role {
	return q.role
}
