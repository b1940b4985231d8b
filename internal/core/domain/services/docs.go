// Package services provides domain services that orchestrate business rules
// across multiple aggregates of the shipment ledger.
//
// The package includes:
//   - TransitionAuthorizer: the permission table gating shipment lifecycle
//     transitions, shipment creation, document attachment, and role management
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
