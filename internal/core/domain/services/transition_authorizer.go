package services

import (
	"fmt"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// TransitionAuthorizer is a domain service implementing the shipment
// permission table: which role a caller must hold to drive each lifecycle
// transition, and who may attach documents.
//
// Authorization rules are a pure function of the caller's role set and the
// requested target status, kept separate from the state machine itself so
// both are independently testable.
//
// Permission table:
//
//	target        required role
//	PickedUp      PACKER
//	InTransit     CARRIER
//	Arrived       CARRIER
//	Delivered     BUYER
//	Canceled      CARRIER
//	Failed        CARRIER
//
// An Admin passes every gate.
type TransitionAuthorizer struct{}

// NewTransitionAuthorizer creates a new TransitionAuthorizer instance.
func NewTransitionAuthorizer() TransitionAuthorizer {
	return TransitionAuthorizer{}
}

// requiredRole returns the role gating a transition into target.
func requiredRole(target shipment.Status) (access.Role, error) {
	//nolint:exhaustive // StatusCreated has no inbound transition; creation is gated separately
	switch target {
	case shipment.StatusPickedUp:
		return access.RolePacker, nil
	case shipment.StatusInTransit, shipment.StatusArrived, shipment.StatusCanceled, shipment.StatusFailed:
		return access.RoleCarrier, nil
	case shipment.StatusDelivered:
		return access.RoleBuyer, nil
	default:
		return access.RoleUnknown, errs.NewValueIsInvalidErrorWithCause("targetStatus",
			fmt.Errorf("%s is not a transition target", target))
	}
}

// AuthorizeTransition checks that the caller may drive the shipment into
// target. Returns an AuthorizationError naming the missing role otherwise.
//
// The check is purely role-based; whether the transition is legal from the
// shipment's current status is the state machine's concern.
func (TransitionAuthorizer) AuthorizeTransition(caller *access.Account, target shipment.Status) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	required, err := requiredRole(target)
	if err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) || caller.HasRole(required) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		fmt.Sprintf("update milestone to %s", target),
		caller.Address().String(),
		fmt.Errorf("role %s required", required),
	)
}

// AuthorizeCreate checks that the caller may register new shipments:
// Staff or Admin.
func (TransitionAuthorizer) AuthorizeCreate(caller *access.Account) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) || caller.HasRole(access.RoleStaff) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		"create shipment",
		caller.Address().String(),
		fmt.Errorf("role %s required", access.RoleStaff),
	)
}

// AuthorizePlaceOrder checks that the caller may place purchase orders:
// Buyer or Admin.
func (TransitionAuthorizer) AuthorizePlaceOrder(caller *access.Account) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) || caller.HasRole(access.RoleBuyer) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		"place order",
		caller.Address().String(),
		fmt.Errorf("role %s required", access.RoleBuyer),
	)
}

// AuthorizeAdmin checks that the caller holds the Admin role.
// Used for operations reserved to operators, such as direct milestone
// releases and token minting.
func (TransitionAuthorizer) AuthorizeAdmin(caller *access.Account, operation string) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		operation,
		caller.Address().String(),
		fmt.Errorf("role %s required", access.RoleAdmin),
	)
}

// AuthorizeAttachDocument checks that the caller may attach a document to the
// shipment: any shipment participant (staff, buyer, bound carrier) or Admin.
func (TransitionAuthorizer) AuthorizeAttachDocument(caller *access.Account, shp *shipment.Shipment) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := shp.Validate(); err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) || shp.IsParticipant(caller.Address()) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		"attach document",
		caller.Address().String(),
		fmt.Errorf("caller is not a participant of shipment %d", shp.ID()),
	)
}

// AuthorizeRoleManagement checks that the caller may grant or revoke roles:
// Admin only.
func (TransitionAuthorizer) AuthorizeRoleManagement(caller *access.Account, operation string) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		operation,
		caller.Address().String(),
		fmt.Errorf("role %s required", access.RoleAdmin),
	)
}

// AuthorizeSetDisplayName checks that the caller may set the display name of
// subject: Admin, or the subject itself.
func (TransitionAuthorizer) AuthorizeSetDisplayName(caller *access.Account, subject kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := subject.Validate(); err != nil {
		return err
	}

	if caller.HasRole(access.RoleAdmin) || caller.Address().IsEqual(subject) {
		return nil
	}

	return errs.NewAuthorizationErrorWithCause(
		"set display name",
		caller.Address().String(),
		fmt.Errorf("only %s or an admin may rename %s", access.RoleAdmin, subject),
	)
}
