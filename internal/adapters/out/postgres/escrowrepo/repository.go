package escrowrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// GormEscrowRepository implements EscrowRepository using GORM.
type GormEscrowRepository struct {
	db *gorm.DB
}

// NewGormEscrowRepository creates a new GORM escrow repository.
func NewGormEscrowRepository(db *gorm.DB) *GormEscrowRepository {
	return &GormEscrowRepository{db: db}
}

// Add saves a new escrow to the database.
func (r *GormEscrowRepository) Add(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateErrorWithCause("escrow", dto.ShipmentID, err)
		}
		return err
	}

	return nil
}

// Update saves an existing escrow to the database.
// Columns are selected explicitly so that deactivation still takes effect.
func (r *GormEscrowRepository) Update(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EscrowDTO{}).
		Where("shipment_id = ?", dto.ShipmentID).
		Select(
			"carrier", "total_amount", "released_amount",
			"milestone1", "milestone2", "milestone3", "milestone4",
			"deadline", "active", "completed",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("escrow", dto.ShipmentID)
	}

	return nil
}

// Get retrieves the escrow funding the given shipment.
func (r *GormEscrowRepository) Get(ctx context.Context, shipmentID uint64) (*escrow.Escrow, error) {
	if shipmentID == 0 {
		return nil, errs.NewValueIsRequiredError("shipmentId")
	}

	var dto EscrowDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("escrow", shipmentID, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an escrow is stored for the given shipment.
func (r *GormEscrowRepository) Exists(ctx context.Context, shipmentID uint64) (bool, error) {
	if shipmentID == 0 {
		return false, errs.NewValueIsRequiredError("shipmentId")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EscrowDTO{}).
		Where("shipment_id = ?", shipmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllActiveExpired retrieves all active escrows past their refund deadline.
func (r *GormEscrowRepository) GetAllActiveExpired(ctx context.Context, now time.Time) ([]*escrow.Escrow, error) {
	var dtos []EscrowDTO
	err := r.db.WithContext(ctx).
		Order("shipment_id").
		Find(&dtos, "active AND deadline < ?", now).Error
	if err != nil {
		return nil, err
	}

	escrows := make([]*escrow.Escrow, 0, len(dtos))
	for _, dto := range dtos {
		esc, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		escrows = append(escrows, esc)
	}

	return escrows, nil
}
