package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetBalanceQueryHandler retrieves token balances.
// Addresses without a ledger row hold a zero balance.
type GetBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceQueryHandler creates a handler for balance lookups.
func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle executes the query.
func (h GetBalanceQueryHandler) Handle(ctx context.Context, query GetBalanceQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var balance int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM token_balances
		WHERE address = ?
	`, query.Address()).Row()

	err := row.Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return balance, nil
}
