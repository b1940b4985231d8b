// Package kernel provides core domain primitives for the shipment ledger.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Address: A value object identifying an external account (caller, buyer, carrier)
//   - ContentRef: A value object referencing externally stored content
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
