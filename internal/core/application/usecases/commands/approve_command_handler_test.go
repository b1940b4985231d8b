package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

func TestApproveCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	ledger := new(MockTokenLedger)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TokenLedger").Return(ledger).Once(),
		ledger.On("Approve", ctx, mustAddress(t, "buyer-1"), mustAddress(t, "vault"), int64(1000)).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveCommandHandler(factory)

	cmd, err := commands.NewApproveCommand(mustAddress(t, "buyer-1"), mustAddress(t, "vault"), 1000)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	ledger.AssertExpectations(t)
}

func TestApproveCommandHandler_Handle_ZeroAmountRevokes(t *testing.T) {
	ctx := t.Context()

	ledger := new(MockTokenLedger)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TokenLedger").Return(ledger).Once()
	ledger.On("Approve", ctx, mustAddress(t, "buyer-1"), mustAddress(t, "vault"), int64(0)).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveCommandHandler(factory)

	cmd, err := commands.NewApproveCommand(mustAddress(t, "buyer-1"), mustAddress(t, "vault"), 0)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
}

func TestNewApproveCommand_NegativeAmount(t *testing.T) {
	_, err := commands.NewApproveCommand(mustAddress(t, "buyer-1"), mustAddress(t, "vault"), -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
