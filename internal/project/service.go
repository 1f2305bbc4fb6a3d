package project

import (
	"log/slog"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// Repository declares the data access the service needs. Employee connect
// lists pass through verbatim, duplicates included.
type Repository interface {
	GetAll() ([]*datamodel.Project, error)
	GetByID(id string) (*datamodel.Project, error)
	Create(proj *datamodel.Project, employeeIDs []string) error
	Update(id string, fields map[string]interface{}, employeeIDs []string) (*datamodel.Project, error)
	Delete(id string) error
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

// CreateProject has no uniqueness constraint: project names may repeat.
func (s *Service) CreateProject(dto CreateProjectDTO) (*ProjectResponse, error) {
	s.logger.Debug("createProject", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	proj := &datamodel.Project{
		Name:        dto.Name,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
	}

	if err := s.repo.Create(proj, dto.Employees); err != nil {
		s.logger.Error("failed to create project", "error", err, "name", dto.Name)
		return nil, err
	}

	return FromDataModel(proj), nil
}

func (s *Service) GetProjects() ([]*ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get projects", "error", err)
		return nil, err
	}

	responses := make([]*ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, FromDataModel(p))
	}
	return responses, nil
}

func (s *Service) GetProjectByID(id string) (*ProjectResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	proj, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(proj), nil
}

func (s *Service) UpdateProject(dto UpdateProjectDTO) (*ProjectResponse, error) {
	s.logger.Debug("updateProject", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(dto.ID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.StartDate != nil {
		fields["start_date"] = *dto.StartDate
	}
	if dto.EndDate != nil {
		fields["end_date"] = *dto.EndDate
	}

	proj, err := s.repo.Update(dto.ID, fields, dto.Employees)
	if err != nil {
		s.logger.Error("failed to update project", "error", err, "id", dto.ID)
		return nil, err
	}

	return FromDataModel(proj), nil
}

func (s *Service) DeleteProject(id string) (*ProjectResponse, error) {
	s.logger.Debug("deleteProject", "id", id)

	if err := validateID(id); err != nil {
		return nil, err
	}

	proj, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete project", "error", err, "id", id)
		return nil, err
	}

	return FromDataModel(proj), nil
}

func validateID(id string) *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", id).Required().UUID()
	return v.Validate()
}
