package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

func TestDepositCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	buyer := accountWithRoles(t, "buyer-1", access.RoleBuyer)
	esc := testEscrow(t, 0, [escrow.MilestoneCount]bool{})

	f.accountRepo.On("Get", ctx, buyer.Address()).Return(buyer, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()
	f.ledger.On("TransferFrom", ctx, mustAddress(t, "vault"), buyer.Address(), mustAddress(t, "vault"), int64(500)).
		Return(nil).Once()
	f.escrowRepo.On("Update", ctx, esc).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewDepositCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewDepositCommand(buyer.Address(), 1, 500)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, int64(1500), esc.TotalAmount())
	require.Len(t, *f.published, 1)
	assert.Equal(t, events.TypeDepositAdded, (*f.published)[0].Type)
}

func TestDepositCommandHandler_Handle_StrangerIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	other := accountWithRoles(t, "buyer-2", access.RoleBuyer)
	esc := testEscrow(t, 0, [escrow.MilestoneCount]bool{})

	f.accountRepo.On("Get", ctx, other.Address()).Return(other, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()

	handler := commands.NewDepositCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewDepositCommand(other.Address(), 1, 500)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, int64(1000), esc.TotalAmount())
	f.ledger.AssertNotCalled(t, "TransferFrom",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDepositCommandHandler_Handle_InactiveEscrowIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	buyer := accountWithRoles(t, "buyer-1", access.RoleBuyer)
	esc, err := escrow.RestoreEscrow(
		1, mustAddress(t, "buyer-1"), mustAddress(t, "carrier-1"),
		1000, 1000, [escrow.MilestoneCount]bool{true, true, true, true},
		testNow.Add(24*time.Hour), false, true,
	)
	require.NoError(t, err)

	f.accountRepo.On("Get", ctx, buyer.Address()).Return(buyer, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()

	handler := commands.NewDepositCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewDepositCommand(buyer.Address(), 1, 500)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalState)
}
