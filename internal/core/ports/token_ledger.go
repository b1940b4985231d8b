package ports

import (
	"context"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
)

// TokenLedger is the fungible token collaborator backing escrow payments.
// All amounts are non-negative integer token units. Implementations must
// reject transfers that would overdraw a balance or exceed an allowance
// with an InsufficientFundsError.
type TokenLedger interface {
	// BalanceOf returns the current balance of the given address.
	// Addresses that never held tokens have a zero balance.
	BalanceOf(ctx context.Context, owner kernel.Address) (int64, error)

	// Transfer moves amount from the caller's balance to the recipient.
	Transfer(ctx context.Context, from, to kernel.Address, amount int64) error

	// Approve sets the allowance the owner grants to the spender,
	// replacing any previous allowance.
	Approve(ctx context.Context, owner, spender kernel.Address, amount int64) error

	// Allowance returns the remaining amount the spender may move from the
	// owner's balance.
	Allowance(ctx context.Context, owner, spender kernel.Address) (int64, error)

	// TransferFrom moves amount from the owner's balance to the recipient
	// on behalf of the spender, consuming the spender's allowance.
	TransferFrom(ctx context.Context, spender, owner, to kernel.Address, amount int64) error

	// Mint credits amount new tokens to the recipient.
	Mint(ctx context.Context, to kernel.Address, amount int64) error
}
