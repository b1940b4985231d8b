// Package accountrepo persists account aggregates, mapping between the
// domain model and the accounts table. Roles are stored as a postgres
// text[] column.
package accountrepo

import (
	"github.com/lib/pq"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	Address     string         `gorm:"primaryKey;size:128"`
	DisplayName string         `gorm:"size:64"`
	Roles       pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(account *access.Account) AccountDTO {
	roles := account.Roles()
	names := make(pq.StringArray, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	return AccountDTO{
		Address:     account.Address().String(),
		DisplayName: account.DisplayName(),
		Roles:       names,
	}
}

func toDomain(dto AccountDTO) (*access.Account, error) {
	address, err := kernel.NewAddress(dto.Address)
	if err != nil {
		return nil, err
	}

	roles := make([]access.Role, 0, len(dto.Roles))
	for _, name := range dto.Roles {
		role, roleErr := access.RoleFromString(name)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return access.RestoreAccount(address, dto.DisplayName, roles)
}
