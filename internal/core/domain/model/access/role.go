package access

import (
	"fmt"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// Role represents a named capability grant on an address. Every gated
// operation in the ledger checks the caller's roles before mutating state.
//
// Admin is a superset authorization: an address holding Admin passes every
// role gate without holding the specific role.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin is the administrative superset role. Admins may perform any
	// gated operation, including role management and token minting.
	RoleAdmin

	// RoleStaff identifies shipment creators: warehouse or office staff who
	// register shipments and attach paperwork.
	RoleStaff

	// RolePacker identifies the party confirming physical pickup.
	RolePacker

	// RoleCarrier identifies the party transporting the shipment. Carriers
	// drive the in-transit and arrival transitions and may cancel or fail
	// a shipment with a reason.
	RoleCarrier

	// RoleBuyer identifies the paying party. Buyers fund escrows and confirm
	// final delivery.
	RoleBuyer
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleAdmin:   "ADMIN",
		RoleStaff:   "STAFF",
		RolePacker:  "PACKER",
		RoleCarrier: "CARRIER",
		RoleBuyer:   "BUYER",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:   "ADMIN",
		RoleStaff:   "STAFF",
		RolePacker:  "PACKER",
		RoleCarrier: "CARRIER",
		RoleBuyer:   "BUYER",
	}
}

// AllRoles returns every grantable role, in declaration order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleStaff, RolePacker, RoleCarrier, RoleBuyer}
}

// RoleFromString parses a role from its canonical upper-case name.
// Returns a ValueIsInvalidError for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and out-of-range values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical upper-case name of the role.
// Returns "UNKNOWN" for invalid role values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
