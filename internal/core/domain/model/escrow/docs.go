// Package escrow implements the per-shipment escrow ledger: buyer-funded
// holdings released incrementally against the four shipment milestones
// (cumulative 30/60/80/100% of the total) or refunded under time-bounded
// rules.
//
// The aggregate decides admissibility and computes amounts; moving tokens is
// left to the application layer so that the state change and the value
// transfer commit or roll back as one transaction.
package escrow
