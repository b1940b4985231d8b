package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

func TestAttachDocumentCommandHandler_Handle_ParticipantAttaches(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture(t)

	buyer := accountWithRoles(t, "buyer-1", access.RoleBuyer)
	shp := testShipment(t, shipment.StatusInTransit, "carrier-1")

	f.accountRepo.On("Get", ctx, buyer.Address()).Return(buyer, nil).Once()
	f.shipmentRepo.On("Get", ctx, uint64(1)).Return(shp, nil).Once()
	f.shipmentRepo.On("Update", ctx, shp).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	handler := commands.NewAttachDocumentCommandHandler(factory, f.publisher, fixedClock)

	cmd, err := commands.NewAttachDocumentCommand(
		buyer.Address(), 1, "CUSTOMS_FORM", mustContentRef(t, "ipfs://customs"))
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	require.Len(t, shp.Documents(), 1)
	doc := shp.Documents()[0]
	assert.Equal(t, "CUSTOMS_FORM", doc.DocType())
	assert.Equal(t, "buyer-1", doc.UploadedBy().String())

	require.Len(t, *f.published, 1)
	assert.Equal(t, events.TypeDocumentAttached, (*f.published)[0].Type)
}

func TestAttachDocumentCommandHandler_Handle_OutsiderIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newTransitionFixture(t)

	outsider := accountWithRoles(t, "buyer-2", access.RoleBuyer)
	shp := testShipment(t, shipment.StatusInTransit, "carrier-1")

	f.accountRepo.On("Get", ctx, outsider.Address()).Return(outsider, nil).Once()
	f.shipmentRepo.On("Get", ctx, uint64(1)).Return(shp, nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	handler := commands.NewAttachDocumentCommandHandler(factory, f.publisher, fixedClock)

	cmd, err := commands.NewAttachDocumentCommand(
		outsider.Address(), 1, "PHOTO", mustContentRef(t, "ipfs://photo"))
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Empty(t, shp.Documents())
	f.shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
