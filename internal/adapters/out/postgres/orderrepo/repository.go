package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/order"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// SequenceName is the postgres sequence issuing order identifiers.
const SequenceName = "order_ids"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextID issues the next sequential order identifier.
func (r *GormOrderRepository) NextID(ctx context.Context) (uint64, error) {
	var id uint64
	row := r.db.WithContext(ctx).Raw("SELECT nextval(?)", SequenceName).Row()
	if err := row.Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateErrorWithCause("order", dto.ID, err)
		}
		return err
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBuyer retrieves all orders placed by the given buyer.
func (r *GormOrderRepository) GetAllByBuyer(ctx context.Context, buyer kernel.Address) ([]*order.Order, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "buyer = ?", buyer.String()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
