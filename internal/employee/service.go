package employee

import (
	"errors"
	"log/slog"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// Repository declares the data access the service needs. Project connect
// lists are handed through verbatim, duplicates included.
type Repository interface {
	GetAll() ([]*datamodel.Employee, error)
	GetByID(id string) (*datamodel.Employee, error)
	ExistsByEmail(email string) (bool, error)
	Create(emp *datamodel.Employee, projectIDs []string) error
	Update(id string, fields map[string]interface{}, projectIDs []string) (*datamodel.Employee, error)
	Delete(id string) error
}

// DepartmentRepository is the slice of the department store this service
// needs to confirm that a referenced parent department exists.
type DepartmentRepository interface {
	GetByID(id string) (*datamodel.Department, error)
}

type Service struct {
	repo        Repository
	departments DepartmentRepository
	logger      *slog.Logger
}

func NewService(repo Repository, departments DepartmentRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		logger:      logger,
	}
}

func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*EmployeeResponse, error) {
	s.logger.Debug("createEmployee", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(dto.Email)
	if err != nil {
		s.logger.Error("failed to check employee email", "error", err, "email", dto.Email)
		return nil, err
	}
	if taken {
		return nil, internal.ErrEmployeeEmailExists
	}

	if err := s.mustHaveDepartment(dto.DepartmentID); err != nil {
		return nil, err
	}

	emp := &datamodel.Employee{
		Email:        dto.Email,
		Name:         dto.Name,
		Position:     dto.Position,
		Salary:       dto.Salary,
		NumberPhone:  dto.NumberPhone,
		Address:      dto.Address,
		DepartmentID: dto.DepartmentID,
	}

	if err := s.repo.Create(emp, dto.Projects); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, err
	}

	return FromDataModel(emp), nil
}

func (s *Service) GetEmployees() ([]*EmployeeResponse, error) {
	emps, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get employees", "error", err)
		return nil, err
	}

	responses := make([]*EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		responses = append(responses, FromDataModel(e))
	}
	return responses, nil
}

func (s *Service) GetEmployeeByID(id string) (*EmployeeResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(emp), nil
}

func (s *Service) UpdateEmployee(dto UpdateEmployeeDTO) (*EmployeeResponse, error) {
	s.logger.Debug("updateEmployee", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// existence of the target precedes any uniqueness check
	if _, err := s.repo.GetByID(dto.ID); err != nil {
		return nil, err
	}

	if dto.Email != nil {
		taken, err := s.repo.ExistsByEmail(*dto.Email)
		if err != nil {
			s.logger.Error("failed to check employee email", "error", err, "email", *dto.Email)
			return nil, err
		}
		if taken {
			return nil, internal.ErrEmployeeEmailExists
		}
	}

	if dto.DepartmentID != nil {
		if err := s.mustHaveDepartment(*dto.DepartmentID); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if dto.Email != nil {
		fields["email"] = *dto.Email
	}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Position != nil {
		fields["position"] = *dto.Position
	}
	if dto.Salary != nil {
		fields["salary"] = *dto.Salary
	}
	if dto.NumberPhone != nil {
		fields["number_phone"] = *dto.NumberPhone
	}
	if dto.Address != nil {
		fields["address"] = *dto.Address
	}
	if dto.DepartmentID != nil {
		fields["department_id"] = *dto.DepartmentID
	}

	emp, err := s.repo.Update(dto.ID, fields, dto.Projects)
	if err != nil {
		s.logger.Error("failed to update employee", "error", err, "id", dto.ID)
		return nil, err
	}

	return FromDataModel(emp), nil
}

func (s *Service) DeleteEmployee(id string) (*EmployeeResponse, error) {
	s.logger.Debug("deleteEmployee", "id", id)

	if err := validateID(id); err != nil {
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "id", id)
		return nil, err
	}

	return FromDataModel(emp), nil
}

// mustHaveDepartment rejects with a 400, not a 404: the missing record is
// a reference inside the request, not the request target.
func (s *Service) mustHaveDepartment(departmentID string) error {
	if _, err := s.departments.GetByID(departmentID); err != nil {
		if errors.Is(err, internal.ErrDepartmentNotFound) {
			return internal.ErrDepartmentMissing
		}
		s.logger.Error("failed to check department", "error", err, "department_id", departmentID)
		return err
	}
	return nil
}

func validateID(id string) *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", id).Required().UUID()
	return v.Validate()
}
