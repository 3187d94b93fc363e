package user

import (
	"strings"
	"time"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/auth"
	userDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/user"
)

// Account is a login account for the payroll system. Password hashes never
// leave the storage layer.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserDTO provisions a new account. Only super admins reach this
// operation; the route policy enforces that before the service runs.
type CreateUserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (dto CreateUserDTO) Validate() error {
	if strings.TrimSpace(dto.Username) == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeValidationFailed)
	}
	if len(dto.Password) < 8 {
		return internal.NewValidationError("password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	if dto.Role != auth.RoleAdmin && dto.Role != auth.RoleSuperAdmin {
		return internal.NewValidationError("role must be admin or super_admin", internal.ErrCodeValidationFailed)
	}
	return nil
}

func FromDataModel(m *userDatamodel.User) *Account {
	return &Account{
		ID:        m.ID,
		Username:  m.Username,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromDataModelSlice(models []*userDatamodel.User) []*Account {
	accounts := make([]*Account, 0, len(models))
	for _, m := range models {
		accounts = append(accounts, FromDataModel(m))
	}
	return accounts
}
