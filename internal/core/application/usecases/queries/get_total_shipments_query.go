package queries

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGetTotalShipmentsQueryIsNotConstructed = errors.New(
	"GetTotalShipmentsQuery must be created via NewGetTotalShipmentsQuery constructor",
)

// GetTotalShipmentsQuery counts all shipments ever created.
type GetTotalShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTotalShipmentsQuery creates the query.
func NewGetTotalShipmentsQuery() (GetTotalShipmentsQuery, error) {
	return GetTotalShipmentsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTotalShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalShipmentsQueryIsNotConstructed)
}
