package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/auth"
	userDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetCredentialsByUsername returns the stored hash, id and role for an
// active user. The caller maps any failure here to a generic credentials
// error so the response never says whether the username exists.
func (r *Repository) GetCredentialsByUsername(username string) (string, int64, string, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ? AND is_active = ?", username, true).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, "", internal.ErrUserNotFound
		}
		return "", 0, "", internal.NewPersistenceError(err)
	}
	return u.PasswordHash, u.ID, u.Role, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ? AND is_active = ?", userID, true).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &auth.User{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}
