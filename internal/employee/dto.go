package employee

import (
	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// Positions is the closed set of accepted employee positions.
var Positions = []string{
	"Accountant", "Designer", "Developer", "HR", "Manager",
	"Marketing", "Other", "Sales", "Security", "Tester",
}

type CreateEmployeeDTO struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Salary       *int64   `json:"salary,omitempty"`
	NumberPhone  *string  `json:"number_phone,omitempty"`
	Address      *string  `json:"address,omitempty"`
	DepartmentID string   `json:"department_id"`
	Projects     []string `json:"projects,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required().Email()
	v.Field("name", dto.Name).Required().MinLength(1).MaxLength(100)
	v.Field("position", dto.Position).Required().OneOf(Positions...)
	v.Field("salary", dto.Salary).PositiveInt()
	v.Field("number_phone", dto.NumberPhone).MinLength(1).MaxLength(100)
	v.Field("address", dto.Address).MinLength(1).MaxLength(100)
	v.Field("department_id", dto.DepartmentID).Required().UUID()
	v.Field("projects", dto.Projects).UUIDList()
	return v.Validate()
}

// UpdateEmployeeDTO carries partial fields; the ID comes from the URL path.
type UpdateEmployeeDTO struct {
	ID           string   `json:"-"`
	Email        *string  `json:"email,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Position     *string  `json:"position,omitempty"`
	Salary       *int64   `json:"salary,omitempty"`
	NumberPhone  *string  `json:"number_phone,omitempty"`
	Address      *string  `json:"address,omitempty"`
	DepartmentID *string  `json:"department_id,omitempty"`
	Projects     []string `json:"projects,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", dto.ID).Required().UUID()
	v.Field("email", dto.Email).Email()
	v.Field("name", dto.Name).MinLength(1).MaxLength(100)
	v.Field("position", dto.Position).OneOf(Positions...)
	v.Field("salary", dto.Salary).PositiveInt()
	v.Field("number_phone", dto.NumberPhone).MinLength(1).MaxLength(100)
	v.Field("address", dto.Address).MinLength(1).MaxLength(100)
	v.Field("department_id", dto.DepartmentID).UUID()
	v.Field("projects", dto.Projects).UUIDList()
	return v.Validate()
}

type DepartmentSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProjectSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Salary      *int64            `json:"salary,omitempty"`
	NumberPhone *string           `json:"number_phone,omitempty"`
	Address     *string           `json:"address,omitempty"`
	Department  DepartmentSummary `json:"department"`
	Projects    []ProjectSummary  `json:"projects"`
}

func FromDataModel(e *datamodel.Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Position:    e.Position,
		Salary:      e.Salary,
		NumberPhone: e.NumberPhone,
		Address:     e.Address,
		Projects:    make([]ProjectSummary, 0, len(e.Projects)),
	}
	if e.Department != nil {
		resp.Department = DepartmentSummary{ID: e.Department.ID, Name: e.Department.Name}
	}
	for _, p := range e.Projects {
		resp.Projects = append(resp.Projects, ProjectSummary{ID: p.ID, Name: p.Name})
	}
	return resp
}
