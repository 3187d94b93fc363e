package project

import (
	"log/slog"
	"time"
)

type Repository interface {
	Create(project *Project) error
	GetByID(id int64) (*Project, error)
	GetAll() ([]*Project, error)
	Delete(id int64) error
	Exists(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateProject(dto CreateProjectDTO) (*Project, error) {
	start, end, err := dto.Parse()
	if err != nil {
		s.logger.Warn("project validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	project := &Project{
		Name:      dto.Name,
		StartDate: start,
		EndDate:   end,
		Budget:    dto.Budget,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(project); err != nil {
		s.logger.Error("failed to create project", "error", err)
		return nil, err
	}

	s.logger.Info("project created", "project_id", project.ID, "name", project.Name)
	return project, nil
}

func (s *Service) GetProject(id int64) (*Project, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListProjects() ([]*Project, error) {
	return s.repo.GetAll()
}

// DeleteProject removes a project unless attendance references it.
func (s *Service) DeleteProject(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Warn("failed to delete project", "error", err, "project_id", id)
		return err
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}
