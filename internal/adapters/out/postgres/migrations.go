package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/accountrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/escrowrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/shipmentrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/tokenledger"
)

// Migrate creates or updates every table and identifier sequence the
// adapters depend on.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ContentRefDTO{},
		&shipmentrepo.DocumentDTO{},
		&escrowrepo.EscrowDTO{},
		&tokenledger.BalanceDTO{},
		&tokenledger.AllowanceDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, sequence := range []string{orderrepo.SequenceName, shipmentrepo.SequenceName} {
		if err = db.Exec("CREATE SEQUENCE IF NOT EXISTS " + sequence).Error; err != nil {
			return fmt.Errorf("create sequence %s: %w", sequence, err)
		}
	}

	return nil
}
