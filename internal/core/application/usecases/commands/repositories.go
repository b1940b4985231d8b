// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, persistence, and post-commit event publishing.
package commands

import (
	"context"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// Clock supplies the current time to handlers. Production code passes
// time.Now; tests pass a fixed instant.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// EscrowRepoFactory provides access to the escrow repository within a transaction.
	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	// LedgerFactory provides access to the token ledger within a transaction.
	LedgerFactory interface {
		TokenLedger() ports.TokenLedger
	}

	// AccountUoW manages transactions for account-only operations:
	// role grants, revocations and profile updates.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OrderUoW manages transactions for order placement.
	// Accounts are needed to authorize the caller.
	OrderUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipmentUoW manages transactions for shipment operations.
	// Lifecycle transitions can release or refund escrow funds, so the
	// escrow repository and the token ledger ride in the same transaction.
	ShipmentUoW interface {
		TxManager
		AccountRepoFactory
		ShipmentRepoFactory
		EscrowRepoFactory
		LedgerFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// EscrowUoW manages transactions for escrow operations.
	// The shipment repository is needed to validate the funded shipment.
	EscrowUoW interface {
		TxManager
		AccountRepoFactory
		ShipmentRepoFactory
		EscrowRepoFactory
		LedgerFactory
	}

	// EscrowUoWFactory creates new escrow unit of work instances.
	EscrowUoWFactory interface {
		Create() EscrowUoW
	}

	// SweepUoW manages transactions for the expired escrow sweep.
	SweepUoW interface {
		TxManager
		EscrowRepoFactory
		LedgerFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}

	// LedgerUoW manages transactions for direct token ledger operations.
	LedgerUoW interface {
		TxManager
		AccountRepoFactory
		LedgerFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}
)
