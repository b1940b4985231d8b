// Package shipment implements the shipment lifecycle aggregate: the milestone
// state machine, the append-only content reference history, and the
// append-only document list.
//
// The Status value object owns the transition rules; the Shipment aggregate
// owns identity, participant binding, and histories. Role checks for
// transitions are a separate concern handled by the transition authorizer in
// the domain services package, keeping the state machine independently
// testable.
package shipment
