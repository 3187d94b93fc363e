package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	userDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/user"
	"github.com/rdelacruz/payroll-management/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(account *user.Account, passwordHash string) error {
	model := &userDatamodel.User{
		Username:     account.Username,
		PasswordHash: passwordHash,
		Role:         account.Role,
		IsActive:     account.IsActive,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.CreatedAt,
	}
	if err := r.db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrDuplicateUsername
		}
		return internal.NewPersistenceError(err)
	}
	account.ID = model.ID
	return nil
}

func (r *UserRepository) GetByID(id int64) (*user.Account, error) {
	var model userDatamodel.User
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return user.FromDataModel(&model), nil
}

func (r *UserRepository) GetAll() ([]*user.Account, error) {
	var models []*userDatamodel.User
	err := r.db.Order("username ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return user.FromDataModelSlice(models), nil
}

func (r *UserRepository) SetActive(id int64, active bool) error {
	result := r.db.Model(&userDatamodel.User{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return internal.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}
