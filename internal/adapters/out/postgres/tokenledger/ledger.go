// Package tokenledger implements the fungible token ledger on two postgres
// tables: token_balances and token_allowances. Balance math runs inside the
// caller's transaction so escrow movements stay atomic with the aggregates
// they fund.
package tokenledger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// BalanceDTO represents one address balance row.
type BalanceDTO struct {
	Address string `gorm:"primaryKey;size:128"`
	Balance int64
}

// TableName specifies the database table name for balance rows.
func (BalanceDTO) TableName() string {
	return "token_balances"
}

// AllowanceDTO represents one owner/spender allowance row.
type AllowanceDTO struct {
	Owner   string `gorm:"primaryKey;size:128"`
	Spender string `gorm:"primaryKey;size:128"`
	Amount  int64
}

// TableName specifies the database table name for allowance rows.
func (AllowanceDTO) TableName() string {
	return "token_allowances"
}

// GormTokenLedger implements TokenLedger using GORM.
type GormTokenLedger struct {
	db *gorm.DB
}

// NewGormTokenLedger creates a new GORM token ledger.
func NewGormTokenLedger(db *gorm.DB) *GormTokenLedger {
	return &GormTokenLedger{db: db}
}

// BalanceOf returns the balance of the given address.
// Addresses without a row hold a zero balance.
func (l *GormTokenLedger) BalanceOf(ctx context.Context, owner kernel.Address) (int64, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}

	return l.balance(ctx, owner)
}

// Transfer moves amount from one balance to another.
// Returns an InsufficientFundsError when the sender balance cannot cover it.
func (l *GormTokenLedger) Transfer(ctx context.Context, from, to kernel.Address, amount int64) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	// The debit carries its own balance guard so two concurrent spenders
	// cannot both pass a prior read and drive the balance negative.
	result := l.db.WithContext(ctx).
		Model(&BalanceDTO{}).
		Where("address = ? AND balance >= ?", from.String(), amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		available, err := l.balance(ctx, from)
		if err != nil {
			return err
		}
		return errs.NewInsufficientFundsError(from.String(), amount, available)
	}

	return l.credit(ctx, to, amount)
}

// Approve sets the allowance the owner grants to the spender,
// replacing any previous allowance.
func (l *GormTokenLedger) Approve(ctx context.Context, owner, spender kernel.Address, amount int64) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if err := spender.Validate(); err != nil {
		return err
	}
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	return l.db.WithContext(ctx).Exec(`
		INSERT INTO token_allowances (owner, spender, amount)
		VALUES (?, ?, ?)
		ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount
	`, owner.String(), spender.String(), amount).Error
}

// Allowance returns the remaining amount the spender may move from the
// owner's balance.
func (l *GormTokenLedger) Allowance(ctx context.Context, owner, spender kernel.Address) (int64, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}
	if err := spender.Validate(); err != nil {
		return 0, err
	}

	var dto AllowanceDTO
	err := l.db.WithContext(ctx).
		First(&dto, "owner = ? AND spender = ?", owner.String(), spender.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return dto.Amount, nil
}

// TransferFrom moves amount from the owner's balance on behalf of the
// spender, consuming the spender's allowance.
func (l *GormTokenLedger) TransferFrom(
	ctx context.Context,
	spender, owner, to kernel.Address,
	amount int64,
) error {
	if err := spender.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	// Consume the allowance with a guarded decrement so concurrent spends
	// cannot both pass the same allowance read.
	result := l.db.WithContext(ctx).
		Model(&AllowanceDTO{}).
		Where("owner = ? AND spender = ? AND amount >= ?", owner.String(), spender.String(), amount).
		Update("amount", gorm.Expr("amount - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		allowance, err := l.Allowance(ctx, owner, spender)
		if err != nil {
			return err
		}
		return errs.NewInsufficientFundsError(spender.String(), amount, allowance)
	}

	return l.Transfer(ctx, owner, to, amount)
}

// Mint credits amount new tokens to the recipient.
func (l *GormTokenLedger) Mint(ctx context.Context, to kernel.Address, amount int64) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	return l.credit(ctx, to, amount)
}

func (l *GormTokenLedger) balance(ctx context.Context, owner kernel.Address) (int64, error) {
	var dto BalanceDTO
	err := l.db.WithContext(ctx).First(&dto, "address = ?", owner.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return dto.Balance, nil
}

func (l *GormTokenLedger) credit(ctx context.Context, to kernel.Address, amount int64) error {
	return l.db.WithContext(ctx).Exec(`
		INSERT INTO token_balances (address, balance)
		VALUES (?, ?)
		ON CONFLICT (address) DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance
	`, to.String(), amount).Error
}
