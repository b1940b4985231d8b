package accountrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *access.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateErrorWithCause("account", dto.Address, err)
		}
		return err
	}

	return nil
}

// Update saves an existing account to the database.
// Columns are selected explicitly so that clearing every role or the
// display name still takes effect.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *access.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("address = ?", dto.Address).
		Select("display_name", "roles").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", dto.Address)
	}

	return nil
}

// Get retrieves an account by address.
func (r *GormAccountRepository) Get(ctx context.Context, address kernel.Address) (*access.Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("account", address.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an account with the given address is stored.
func (r *GormAccountRepository) Exists(ctx context.Context, address kernel.Address) (bool, error) {
	if err := address.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("address = ?", address.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
