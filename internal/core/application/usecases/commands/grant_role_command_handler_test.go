package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

func TestGrantRoleCommandHandler_Handle_CreatesAccountOnFirstGrant(t *testing.T) {
	ctx := t.Context()

	admin := accountWithRoles(t, "admin-1", access.RoleAdmin)
	cmd, err := commands.NewGrantRoleCommand(admin.Address(), mustAddress(t, "carrier-1"), access.RoleCarrier)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, admin.Address()).Return(admin, nil).Once(),
		accountRepo.On("Get", ctx, mustAddress(t, "carrier-1")).
			Return(nil, errs.NewObjectNotFoundError("account", "carrier-1")).
			Once(),
		accountRepo.On("Add", ctx, mock.AnythingOfType("*access.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	published := expectAnyEvents(publisher)

	handler := commands.NewGrantRoleCommandHandler(factory, publisher, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Len(t, *published, 1)
	assert.Equal(t, events.TypeRoleGranted, (*published)[0].Type)
	payload := (*published)[0].Payload.(events.RoleChangedPayload)
	assert.Equal(t, "CARRIER", payload.Role)
	assert.Equal(t, "carrier-1", payload.Account)
	assert.Equal(t, "admin-1", payload.Sender)
}

func TestGrantRoleCommandHandler_Handle_IdempotentGrantEmitsNoEvent(t *testing.T) {
	ctx := t.Context()

	admin := accountWithRoles(t, "admin-1", access.RoleAdmin)
	carrier := accountWithRoles(t, "carrier-1", access.RoleCarrier)
	cmd, err := commands.NewGrantRoleCommand(admin.Address(), carrier.Address(), access.RoleCarrier)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	accountRepo.On("Get", ctx, admin.Address()).Return(admin, nil).Once()
	accountRepo.On("Get", ctx, carrier.Address()).Return(carrier, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	published := expectAnyEvents(publisher)

	handler := commands.NewGrantRoleCommandHandler(factory, publisher, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assert.Empty(t, *published)
}

func TestGrantRoleCommandHandler_Handle_NonAdminIsRejected(t *testing.T) {
	ctx := t.Context()

	staff := accountWithRoles(t, "staff-1", access.RoleStaff)
	cmd, err := commands.NewGrantRoleCommand(staff.Address(), mustAddress(t, "carrier-1"), access.RoleCarrier)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	accountRepo.On("Get", ctx, staff.Address()).Return(staff, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGrantRoleCommandHandler(factory, new(MockEventPublisher), fixedClock)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGrantRoleCommandHandler_Handle_UnknownCallerIsRejected(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewGrantRoleCommand(
		mustAddress(t, "nobody"), mustAddress(t, "carrier-1"), access.RoleCarrier)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	accountRepo.On("Get", ctx, mustAddress(t, "nobody")).
		Return(nil, errs.NewObjectNotFoundError("account", "nobody")).
		Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGrantRoleCommandHandler(factory, new(MockEventPublisher), fixedClock)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestGrantRoleCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockAccountUoWFactory)
	handler := commands.NewGrantRoleCommandHandler(factory, new(MockEventPublisher), fixedClock)

	err := handler.Handle(t.Context(), commands.GrantRoleCommand{})

	require.ErrorIs(t, err, commands.ErrGrantRoleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
