package department

import (
	"log/slog"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// Repository declares the data access the service needs. The employees
// connect list is handed through verbatim: duplicates are not removed and
// the listed IDs are not checked for existence before the connect.
type Repository interface {
	GetAll() ([]*datamodel.Department, error)
	GetByID(id string) (*datamodel.Department, error)
	ExistsByName(name string) (bool, error)
	Create(dept *datamodel.Department, employeeIDs []string) error
	Update(id string, fields map[string]interface{}, employeeIDs []string) (*datamodel.Department, error)
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

func (s *Service) CreateDepartment(dto CreateDepartmentDTO) (*DepartmentResponse, error) {
	s.logger.Debug("createDepartment", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check department name", "error", err, "name", dto.Name)
		return nil, err
	}
	if taken {
		return nil, internal.ErrDepartmentNameExists
	}

	dept := &datamodel.Department{
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(dept, dto.Employees); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, err
	}

	return FromDataModel(dept), nil
}

func (s *Service) GetDepartments() ([]*DepartmentResponse, error) {
	depts, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get departments", "error", err)
		return nil, err
	}

	responses := make([]*DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		responses = append(responses, FromDataModel(d))
	}
	return responses, nil
}

func (s *Service) GetDepartmentByID(id string) (*DepartmentResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(dept), nil
}

func (s *Service) UpdateDepartment(dto UpdateDepartmentDTO) (*DepartmentResponse, error) {
	s.logger.Debug("updateDepartment", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// existence of the target precedes any uniqueness check
	if _, err := s.repo.GetByID(dto.ID); err != nil {
		return nil, err
	}

	if dto.Name != nil {
		taken, err := s.repo.ExistsByName(*dto.Name)
		if err != nil {
			s.logger.Error("failed to check department name", "error", err, "name", *dto.Name)
			return nil, err
		}
		if taken {
			return nil, internal.ErrDepartmentNameExists
		}
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}

	dept, err := s.repo.Update(dto.ID, fields, dto.Employees)
	if err != nil {
		s.logger.Error("failed to update department", "error", err, "id", dto.ID)
		return nil, err
	}

	return FromDataModel(dept), nil
}

// DeleteDepartment removes the record and answers with its last known
// projection.
func (s *Service) DeleteDepartment(id string) (*DepartmentResponse, error) {
	s.logger.Debug("deleteDepartment", "id", id)

	if err := validateID(id); err != nil {
		return nil, err
	}

	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete department", "error", err, "id", id)
		return nil, err
	}

	return FromDataModel(dept), nil
}

func validateID(id string) *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", id).Required().UUID()
	return v.Validate()
}
