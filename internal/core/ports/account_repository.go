// Package ports defines the contracts between the application core and
// infrastructure. Repositories persist aggregates, the unit of work scopes
// them to one transaction, and the remaining ports cover the token ledger,
// event publishing and time.
package ports

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *access.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *access.Account) error

	// Get retrieves an account by its address.
	// Returns an ObjectNotFoundError when no account exists for the address.
	Get(ctx context.Context, address kernel.Address) (*access.Account, error)

	// Exists reports whether an account with the given address is stored.
	Exists(ctx context.Context, address kernel.Address) (bool, error)
}
