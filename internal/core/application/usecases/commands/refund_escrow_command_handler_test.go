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
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

func TestRefundEscrowCommandHandler_Handle_TerminatedShipmentRefundsInFull(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	buyer := accountWithRoles(t, "buyer-1", access.RoleBuyer)
	esc := testEscrow(t, 0, [escrow.MilestoneCount]bool{})
	shp := testShipment(t, shipment.StatusCanceled, "")

	f.accountRepo.On("Get", ctx, buyer.Address()).Return(buyer, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()
	f.shipmentRepo.On("Get", ctx, uint64(1)).Return(shp, nil).Once()
	f.ledger.On("Transfer", ctx, mustAddress(t, "vault"), buyer.Address(), int64(1000)).
		Return(nil).Once()
	f.escrowRepo.On("Update", ctx, esc).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewRefundEscrowCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewRefundEscrowCommand(buyer.Address(), 1)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.False(t, esc.IsActive())
	require.Len(t, *f.published, 1)
	assert.Equal(t, events.TypeEscrowRefunded, (*f.published)[0].Type)
}

func TestRefundEscrowCommandHandler_Handle_ActiveShipmentBeforeDeadlineIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	buyer := accountWithRoles(t, "buyer-1", access.RoleBuyer)
	esc := testEscrow(t, 0, [escrow.MilestoneCount]bool{})
	shp := testShipment(t, shipment.StatusPickedUp, "")

	f.accountRepo.On("Get", ctx, buyer.Address()).Return(buyer, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()
	f.shipmentRepo.On("Get", ctx, uint64(1)).Return(shp, nil).Once()

	handler := commands.NewRefundEscrowCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewRefundEscrowCommand(buyer.Address(), 1)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalState)
	assert.True(t, esc.IsActive())
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRefundEscrowCommandHandler_Handle_PastDeadlineRefundsRemainder(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	buyer := accountWithRoles(t, "buyer-1", access.RoleBuyer)
	// Deadline already behind the clock; 300 of 1000 released.
	esc, err := escrow.RestoreEscrow(
		1, mustAddress(t, "buyer-1"), kernel.Address{},
		1000, 300, [escrow.MilestoneCount]bool{true},
		testNow.Add(-time.Hour), true, false,
	)
	require.NoError(t, err)
	shp := testShipment(t, shipment.StatusInTransit, "carrier-1")

	f.accountRepo.On("Get", ctx, buyer.Address()).Return(buyer, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()
	f.shipmentRepo.On("Get", ctx, uint64(1)).Return(shp, nil).Once()
	f.ledger.On("Transfer", ctx, mustAddress(t, "vault"), buyer.Address(), int64(700)).
		Return(nil).Once()
	f.escrowRepo.On("Update", ctx, esc).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewRefundEscrowCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewRefundEscrowCommand(buyer.Address(), 1)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.False(t, esc.IsActive())
	payload := (*f.published)[0].Payload.(events.EscrowRefundedPayload)
	assert.Equal(t, int64(700), payload.Amount)
}

func TestRefundEscrowCommandHandler_Handle_StrangerIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newEscrowFixture(t)

	other := accountWithRoles(t, "buyer-2", access.RoleBuyer)
	esc := testEscrow(t, 0, [escrow.MilestoneCount]bool{})

	f.accountRepo.On("Get", ctx, other.Address()).Return(other, nil).Once()
	f.escrowRepo.On("Get", ctx, uint64(1)).Return(esc, nil).Once()

	handler := commands.NewRefundEscrowCommandHandler(f.factory, f.publisher, fixedClock, mustAddress(t, "vault"))

	cmd, err := commands.NewRefundEscrowCommand(other.Address(), 1)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	f.shipmentRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
