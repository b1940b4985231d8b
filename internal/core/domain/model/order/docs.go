// Package order implements the purchase order record: an informational,
// append-only registration of what a buyer wants shipped. Shipments refer to
// orders only through shared external content, never through a foreign key.
package order
