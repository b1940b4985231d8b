// Package access implements the role table of the shipment ledger: which
// addresses hold which capabilities, and the optional display name per address.
//
// The Account aggregate holds a role set keyed by address. Grants and
// revocations are idempotent; history consumers learn about actual
// changes through RoleGranted/RoleRevoked events, which are only emitted when
// the role set changes.
package access
