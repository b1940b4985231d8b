package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
)

// Commands reject malformed input at construction so handlers never see a
// half-built request.
func TestCommandConstructors_RejectInvalidInput(t *testing.T) {
	sender := mustAddress(t, "admin-1")
	target := mustAddress(t, "buyer-1")
	ref := mustContentRef(t, "ipfs://manifest")

	t.Run("grant role with unknown role", func(t *testing.T) {
		_, err := commands.NewGrantRoleCommand(sender, target, access.Role(42))
		require.Error(t, err)
	})

	t.Run("revoke role with zero address", func(t *testing.T) {
		_, err := commands.NewRevokeRoleCommand(sender, kernel.Address{}, access.RoleCarrier)
		require.Error(t, err)
	})

	t.Run("set display name with empty name", func(t *testing.T) {
		_, err := commands.NewSetDisplayNameCommand(sender, target, "")
		require.Error(t, err)
	})

	t.Run("create order with zero content ref", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(sender, kernel.ContentRef{})
		require.Error(t, err)
	})

	t.Run("create shipment with negative fee", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(sender, target, ref, nil, -1, time.Time{})
		require.Error(t, err)
	})

	t.Run("create shipment with untyped initial document", func(t *testing.T) {
		docs := []commands.InitialDocument{{DocType: "", ContentRef: ref}}
		_, err := commands.NewCreateShipmentCommand(sender, target, ref, docs, 0, time.Time{})
		require.Error(t, err)
	})

	t.Run("attach document with empty doc type", func(t *testing.T) {
		_, err := commands.NewAttachDocumentCommand(sender, 1, "", ref)
		require.Error(t, err)
	})

	t.Run("update milestone to created", func(t *testing.T) {
		_, err := commands.NewUpdateMilestoneCommand(sender, 1, shipment.StatusCreated, "")
		require.Error(t, err)
	})

	t.Run("update milestone with zero shipment id", func(t *testing.T) {
		_, err := commands.NewUpdateMilestoneCommand(sender, 0, shipment.StatusPickedUp, "")
		require.Error(t, err)
	})

	t.Run("open escrow with zero amount", func(t *testing.T) {
		_, err := commands.NewOpenEscrowCommand(sender, 1, 0, time.Time{})
		require.Error(t, err)
	})

	t.Run("deposit with negative amount", func(t *testing.T) {
		_, err := commands.NewDepositCommand(sender, 1, -5)
		require.Error(t, err)
	})

	t.Run("release milestone out of range", func(t *testing.T) {
		_, err := commands.NewReleaseMilestoneCommand(sender, 1, 5)
		require.Error(t, err)
	})

	t.Run("refund with zero shipment id", func(t *testing.T) {
		_, err := commands.NewRefundEscrowCommand(sender, 0)
		require.Error(t, err)
	})

	t.Run("mint with zero amount", func(t *testing.T) {
		_, err := commands.NewMintCommand(sender, target, 0)
		require.Error(t, err)
	})
}

func TestCommands_ZeroValueFailsValidate(t *testing.T) {
	assert.ErrorIs(t,
		commands.GrantRoleCommand{}.Validate(),
		commands.ErrGrantRoleCommandIsNotConstructed)
	assert.ErrorIs(t,
		commands.UpdateMilestoneCommand{}.Validate(),
		commands.ErrUpdateMilestoneCommandIsNotConstructed)
	assert.ErrorIs(t,
		commands.OpenEscrowCommand{}.Validate(),
		commands.ErrOpenEscrowCommandIsNotConstructed)
	assert.ErrorIs(t,
		commands.SweepExpiredEscrowsCommand{}.Validate(),
		commands.ErrSweepExpiredEscrowsCommandIsNotConstructed)
}

func TestUpdateMilestoneCommand_Accessors(t *testing.T) {
	sender := mustAddress(t, "carrier-1")

	cmd, err := commands.NewUpdateMilestoneCommand(sender, 7, shipment.StatusFailed, "truck broke down")
	require.NoError(t, err)

	assert.Equal(t, sender, cmd.Sender())
	assert.Equal(t, uint64(7), cmd.ShipmentID())
	assert.Equal(t, shipment.StatusFailed, cmd.Target())
	assert.Equal(t, "truck broke down", cmd.Reason())
}
