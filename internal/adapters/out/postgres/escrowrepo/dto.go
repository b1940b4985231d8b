// Package escrowrepo persists escrow aggregates, mapping between the domain
// model and the escrows table. Escrows are keyed by the shipment they fund.
package escrowrepo

import (
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
)

// EscrowDTO represents the database structure for persisting escrows.
type EscrowDTO struct {
	ShipmentID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	Buyer          string `gorm:"size:128;index"`
	Carrier        string `gorm:"size:128"`
	TotalAmount    int64
	ReleasedAmount int64
	Milestone1     bool
	Milestone2     bool
	Milestone3     bool
	Milestone4     bool
	Deadline       time.Time `gorm:"index"`
	Active         bool      `gorm:"index"`
	Completed      bool
}

// TableName specifies the database table name for escrow entities.
func (EscrowDTO) TableName() string {
	return "escrows"
}

func fromDomain(esc *escrow.Escrow) EscrowDTO {
	dto := EscrowDTO{
		ShipmentID:     esc.ShipmentID(),
		Buyer:          esc.Buyer().String(),
		Carrier:        esc.Carrier().String(),
		TotalAmount:    esc.TotalAmount(),
		ReleasedAmount: esc.ReleasedAmount(),
		Deadline:       esc.Deadline(),
		Active:         esc.IsActive(),
		Completed:      esc.IsCompleted(),
	}

	dto.Milestone1 = esc.MilestoneReleased(1)
	dto.Milestone2 = esc.MilestoneReleased(2)
	dto.Milestone3 = esc.MilestoneReleased(3)
	dto.Milestone4 = esc.MilestoneReleased(4)

	return dto
}

func toDomain(dto EscrowDTO) (*escrow.Escrow, error) {
	buyer, err := kernel.NewAddress(dto.Buyer)
	if err != nil {
		return nil, err
	}

	var carrier kernel.Address
	if dto.Carrier != "" {
		carrier, err = kernel.NewAddress(dto.Carrier)
		if err != nil {
			return nil, err
		}
	}

	milestones := [escrow.MilestoneCount]bool{
		dto.Milestone1,
		dto.Milestone2,
		dto.Milestone3,
		dto.Milestone4,
	}

	return escrow.RestoreEscrow(
		dto.ShipmentID,
		buyer, carrier,
		dto.TotalAmount, dto.ReleasedAmount,
		milestones,
		dto.Deadline,
		dto.Active, dto.Completed,
	)
}
