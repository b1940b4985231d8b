package queries

import (
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/guard"
)

var ErrGetBalanceQueryIsNotConstructed = errors.New(
	"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
)

// GetBalanceQuery retrieves the token balance of an address.
type GetBalanceQuery struct {
	address string

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a query for the given address.
func NewGetBalanceQuery(address string) (GetBalanceQuery, error) {
	if address == "" {
		return GetBalanceQuery{}, errs.NewValueIsRequiredError("address")
	}

	return GetBalanceQuery{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

// Address returns the account address.
func (q GetBalanceQuery) Address() string {
	return q.address
}
