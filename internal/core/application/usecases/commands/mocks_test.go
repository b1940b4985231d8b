package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/events"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/order"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

var testNow = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func mustAddress(t *testing.T, value string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(value)
	require.NoError(t, err)
	return addr
}

func mustContentRef(t *testing.T, value string) kernel.ContentRef {
	t.Helper()
	ref, err := kernel.NewContentRef(value)
	require.NoError(t, err)
	return ref
}

// accountWithRoles builds a stored account holding the given roles.
func accountWithRoles(t *testing.T, address string, roles ...access.Role) *access.Account {
	t.Helper()
	account, err := access.RestoreAccount(mustAddress(t, address), "", roles)
	require.NoError(t, err)
	return account
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *access.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, aggregate *access.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, address kernel.Address) (*access.Account, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.Account), args.Error(1)
}

func (m *MockAccountRepository) Exists(ctx context.Context, address kernel.Address) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByBuyer(ctx context.Context, buyer kernel.Address) ([]*order.Order, error) {
	args := m.Called(ctx, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) NextID(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id uint64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByParticipant(
	ctx context.Context,
	participant kernel.Address,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, participant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEscrowRepository struct{ mock.Mock }

func (m *MockEscrowRepository) Add(ctx context.Context, aggregate *escrow.Escrow) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEscrowRepository) Update(ctx context.Context, aggregate *escrow.Escrow) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEscrowRepository) Get(ctx context.Context, shipmentID uint64) (*escrow.Escrow, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Escrow), args.Error(1)
}

func (m *MockEscrowRepository) Exists(ctx context.Context, shipmentID uint64) (bool, error) {
	args := m.Called(ctx, shipmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEscrowRepository) GetAllActiveExpired(ctx context.Context, now time.Time) ([]*escrow.Escrow, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*escrow.Escrow), args.Error(1)
}

type MockTokenLedger struct{ mock.Mock }

func (m *MockTokenLedger) BalanceOf(ctx context.Context, owner kernel.Address) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenLedger) Transfer(ctx context.Context, from, to kernel.Address, amount int64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

func (m *MockTokenLedger) Approve(ctx context.Context, owner, spender kernel.Address, amount int64) error {
	args := m.Called(ctx, owner, spender, amount)
	return args.Error(0)
}

func (m *MockTokenLedger) Allowance(ctx context.Context, owner, spender kernel.Address) (int64, error) {
	args := m.Called(ctx, owner, spender)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenLedger) TransferFrom(ctx context.Context, spender, owner, to kernel.Address, amount int64) error {
	args := m.Called(ctx, spender, owner, to, amount)
	return args.Error(0)
}

func (m *MockTokenLedger) Mint(ctx context.Context, to kernel.Address, amount int64) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}

// MockUoW satisfies every narrow unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) EscrowRepository() ports.EscrowRepository {
	args := m.Called()
	return args.Get(0).(ports.EscrowRepository)
}

func (m *MockUoW) TokenLedger() ports.TokenLedger {
	args := m.Called()
	return args.Get(0).(ports.TokenLedger)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockEscrowUoWFactory struct{ mock.Mock }

func (m *MockEscrowUoWFactory) Create() commands.EscrowUoW {
	args := m.Called()
	return args.Get(0).(commands.EscrowUoW)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	args := m.Called()
	return args.Get(0).(commands.SweepUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// expectAnyEvents allows any number of publications and records them.
func expectAnyEvents(publisher *MockEventPublisher) *[]events.Event {
	published := &[]events.Event{}
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).
		Run(func(args mock.Arguments) {
			*published = append(*published, args.Get(1).(events.Event))
		}).
		Return().
		Maybe()
	return published
}
