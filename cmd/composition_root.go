package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpadapter "github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/in/http"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/kafka"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/queries"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/ports"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/jobs"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// CompositionRoot wires adapters to use cases. Every handler shares the same
// unit of work factory, event publisher and clock.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	clock      commands.Clock
	logger     *slog.Logger

	vault     kernel.Address
	payout    kernel.Address
	escrowTTL time.Duration
}

// NewCompositionRoot builds the object graph from the configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	vault, err := kernel.NewAddress(config.VaultAddress)
	if err != nil {
		return nil, fmt.Errorf("vault address: %w", err)
	}

	payout, err := kernel.NewAddress(config.PayoutAddress)
	if err != nil {
		return nil, fmt.Errorf("payout address: %w", err)
	}

	var publisher ports.EventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewEventPublisher(config.KafkaHost, config.KafkaEventsTopic, logger)
	} else {
		publisher = kafka.NewLogPublisher(logger)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		clock:      time.Now,
		logger:     logger,
		vault:      vault,
		payout:     payout,
		escrowTTL:  time.Duration(config.EscrowTTLHours) * time.Hour,
	}, nil
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) escrowUoWFactory() commands.EscrowUoWFactory {
	return FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sweepUoWFactory() commands.SweepUoWFactory {
	return FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

// CreateServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		commands.NewGrantRoleCommandHandler(c.accountUoWFactory(), c.publisher, c.clock),
		commands.NewRevokeRoleCommandHandler(c.accountUoWFactory(), c.publisher, c.clock),
		commands.NewSetDisplayNameCommandHandler(c.accountUoWFactory()),
		commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock),
		commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher, c.clock, c.vault, c.escrowTTL),
		commands.NewAttachDocumentCommandHandler(c.shipmentUoWFactory(), c.publisher, c.clock),
		commands.NewUpdateMilestoneCommandHandler(c.shipmentUoWFactory(), c.publisher, c.clock, c.vault, c.payout),
		commands.NewOpenEscrowCommandHandler(c.escrowUoWFactory(), c.publisher, c.clock, c.vault, c.escrowTTL),
		commands.NewDepositCommandHandler(c.escrowUoWFactory(), c.publisher, c.clock, c.vault),
		commands.NewReleaseMilestoneCommandHandler(c.escrowUoWFactory(), c.publisher, c.clock, c.vault, c.payout),
		commands.NewRefundEscrowCommandHandler(c.escrowUoWFactory(), c.publisher, c.clock, c.vault),
		commands.NewMintCommandHandler(c.ledgerUoWFactory()),
		commands.NewApproveCommandHandler(c.ledgerUoWFactory()),
		queries.NewGetShipmentQueryHandler(c.gormDB),
		queries.NewGetShipmentDocumentsQueryHandler(c.gormDB),
		queries.NewGetShipmentsByAddressQueryHandler(c.gormDB),
		queries.NewGetTotalShipmentsQueryHandler(c.gormDB),
		queries.NewGetEscrowDetailsQueryHandler(c.gormDB),
		queries.NewHasRoleQueryHandler(c.gormDB),
		queries.NewGetBalanceQueryHandler(c.gormDB),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(sweepSchedule string) *jobs.JobManager {
	sweepHandler := commands.NewSweepExpiredEscrowsCommandHandler(
		c.sweepUoWFactory(), c.publisher, c.clock, c.vault, c.logger)

	return jobs.NewJobManager(sweepHandler, sweepSchedule, c.logger)
}

// SeedAdmin ensures the configured address holds the ADMIN role, creating
// the account when necessary. Without it a fresh system has no account able
// to grant roles.
func (c *CompositionRoot) SeedAdmin(ctx context.Context, address string) error {
	if address == "" {
		return nil
	}

	addr, err := kernel.NewAddress(address)
	if err != nil {
		return fmt.Errorf("seed admin address: %w", err)
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx) //nolint:errcheck //rollback after commit is a no-op failure

	repo := uow.AccountRepository()

	account, err := repo.Get(ctx, addr)
	created := false
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}

		account, err = access.NewAccount(addr)
		if err != nil {
			return err
		}
		created = true
	}

	changed, err := account.Grant(access.RoleAdmin)
	if err != nil {
		return err
	}

	switch {
	case created:
		err = repo.Add(ctx, account)
	case changed:
		err = repo.Update(ctx, account)
	default:
		return uow.Rollback(ctx)
	}
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Admin account seeded", "address", address)
	return uow.Commit(ctx)
}

// Func adapters narrowing the unit of work factory to each handler's
// dependency.

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}
