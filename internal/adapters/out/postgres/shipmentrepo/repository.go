package shipmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// SequenceName is the postgres sequence issuing shipment identifiers.
const SequenceName = "shipment_ids"

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// NextID issues the next sequential shipment identifier.
func (r *GormShipmentRepository) NextID(ctx context.Context) (uint64, error) {
	var id uint64
	row := r.db.WithContext(ctx).Raw("SELECT nextval(?)", SequenceName).Row()
	if err := row.Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Add saves a new shipment and its child rows to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, refDTOs, docDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateErrorWithCause("shipment", dto.ID, err)
		}
		return err
	}

	return r.saveChildren(ctx, refDTOs, docDTOs)
}

// Update saves an existing shipment to the database.
// Child rows are replaced wholesale; content references and documents are
// append-only in the domain so the rewrite preserves their order.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, refDTOs, docDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("carrier", "status", "close_reason", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", dto.ID)
	}

	err := r.db.WithContext(ctx).
		Delete(&ContentRefDTO{}, "shipment_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Delete(&DocumentDTO{}, "shipment_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	return r.saveChildren(ctx, refDTOs, docDTOs)
}

// Get retrieves a shipment by ID together with its child rows.
func (r *GormShipmentRepository) Get(ctx context.Context, id uint64) (*shipment.Shipment, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("shipment", id, err)
		}
		return nil, err
	}

	refDTOs, docDTOs, err := r.loadChildren(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, refDTOs, docDTOs)
}

// GetAllByParticipant retrieves all shipments involving the given address.
func (r *GormShipmentRepository) GetAllByParticipant(
	ctx context.Context,
	participant kernel.Address,
) ([]*shipment.Shipment, error) {
	if err := participant.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	addr := participant.String()
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "staff = ? OR buyer = ? OR carrier = ?", addr, addr, addr).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		refDTOs, docDTOs, childErr := r.loadChildren(ctx, dto.ID)
		if childErr != nil {
			return nil, childErr
		}

		shp, domainErr := toDomain(dto, refDTOs, docDTOs)
		if domainErr != nil {
			return nil, domainErr
		}
		shipments = append(shipments, shp)
	}

	return shipments, nil
}

// Count returns the total number of shipments ever created.
func (r *GormShipmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormShipmentRepository) saveChildren(
	ctx context.Context,
	refDTOs []ContentRefDTO,
	docDTOs []DocumentDTO,
) error {
	if len(refDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&refDTOs).Error; err != nil {
			return err
		}
	}

	if len(docDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&docDTOs).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormShipmentRepository) loadChildren(
	ctx context.Context,
	shipmentID uint64,
) ([]ContentRefDTO, []DocumentDTO, error) {
	var refDTOs []ContentRefDTO
	err := r.db.WithContext(ctx).
		Order("position").
		Find(&refDTOs, "shipment_id = ?", shipmentID).Error
	if err != nil {
		return nil, nil, err
	}

	var docDTOs []DocumentDTO
	err = r.db.WithContext(ctx).
		Order("position").
		Find(&docDTOs, "shipment_id = ?", shipmentID).Error
	if err != nil {
		return nil, nil, err
	}

	return refDTOs, docDTOs, nil
}
