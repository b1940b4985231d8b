// Package postgres provides the GORM-based Unit of Work. A unit of work
// scopes every repository and the token ledger to one database transaction
// so a command either commits all of its changes or none.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ShipmentRepository().Update(ctx, shp); err != nil {
//	    return err
//	}
//	if err := uow.TokenLedger().Transfer(ctx, vault, payout, amount); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create call returns an isolated instance; concurrent operations must
// not share one.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/accountrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/escrowrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/shipmentrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/tokenledger"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the account,
// order, shipment and escrow repositories and the token ledger.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction.
// Calling Begin again on an active instance is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// AccountRepository returns an account repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

// EscrowRepository returns an escrow repository bound to the current
// transaction.
func (uow *GormUnitOfWork) EscrowRepository() ports.EscrowRepository {
	return escrowrepo.NewGormEscrowRepository(uow.conn())
}

// TokenLedger returns a token ledger bound to the current transaction.
func (uow *GormUnitOfWork) TokenLedger() ports.TokenLedger {
	return tokenledger.NewGormTokenLedger(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
