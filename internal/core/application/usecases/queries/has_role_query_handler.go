package queries

import (
	"context"

	"gorm.io/gorm"
)

// HasRoleQueryHandler checks role membership against the accounts table.
// Unknown accounts simply hold no roles.
type HasRoleQueryHandler struct {
	db *gorm.DB
}

// NewHasRoleQueryHandler creates a handler for role checks.
func NewHasRoleQueryHandler(db *gorm.DB) HasRoleQueryHandler {
	return HasRoleQueryHandler{db: db}
}

// Handle executes the query.
func (h HasRoleQueryHandler) Handle(ctx context.Context, query HasRoleQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var hasRole bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM accounts
			WHERE address = ? AND ? = ANY(roles)
		)
	`, query.Address(), query.Role().String()).Row()
	if err := row.Scan(&hasRole); err != nil {
		return false, err
	}

	return hasRole, nil
}
