package commands

import (
	"context"
	"errors"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// loadCaller resolves the account of the address performing the operation.
// A caller with no stored account holds no roles, so it is reported as not
// authorized rather than not found.
func loadCaller(
	ctx context.Context,
	repo ports.AccountRepository,
	sender kernel.Address,
	operation string,
) (*access.Account, error) {
	caller, err := repo.Get(ctx, sender)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewAuthorizationErrorWithCause(operation, sender.String(), err)
	}
	if err != nil {
		return nil, err
	}

	return caller, nil
}
