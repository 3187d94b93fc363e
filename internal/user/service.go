package user

import (
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rdelacruz/payroll-management/internal"
)

type Repository interface {
	Create(account *Account, passwordHash string) error
	GetByID(id int64) (*Account, error)
	GetAll() ([]*Account, error)
	SetActive(id int64, active bool) error
}

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) CreateUser(dto CreateUserDTO) (*Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}

	account := &Account{
		Username:  strings.TrimSpace(dto.Username),
		Role:      dto.Role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(account, string(hash)); err != nil {
		s.logger.Warn("failed to create user", "error", err, "username", account.Username)
		return nil, err
	}

	s.logger.Info("user created", "user_id", account.ID, "username", account.Username, "role", account.Role)
	return account, nil
}

func (s *Service) GetUser(id int64) (*Account, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListUsers() ([]*Account, error) {
	return s.repo.GetAll()
}

// DeactivateUser disables the account without deleting it, so its audit
// trail stays intact. A deactivated account can no longer authenticate.
func (s *Service) DeactivateUser(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.SetActive(id, false); err != nil {
		return err
	}
	s.logger.Info("user deactivated", "user_id", id)
	return nil
}
