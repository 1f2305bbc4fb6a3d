package department

import (
	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// DepartmentNames is the closed set of accepted department categories.
var DepartmentNames = []string{"IT", "HR", "Marketing", "Sales", "Security", "Other"}

type CreateDepartmentDTO struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Employees   []string `json:"employees,omitempty"`
}

func (dto CreateDepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().OneOf(DepartmentNames...)
	v.Field("description", dto.Description).MinLength(1).MaxLength(100)
	v.Field("employees", dto.Employees).UUIDList()
	return v.Validate()
}

// UpdateDepartmentDTO carries partial fields; the ID is injected from the
// URL path by the handler and never trusted from the body.
type UpdateDepartmentDTO struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Employees   []string `json:"employees,omitempty"`
}

func (dto UpdateDepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", dto.ID).Required().UUID()
	v.Field("name", dto.Name).OneOf(DepartmentNames...)
	v.Field("description", dto.Description).MinLength(1).MaxLength(100)
	v.Field("employees", dto.Employees).UUIDList()
	return v.Validate()
}

// EmployeeSummary is the reduced shape employees take when nested inside
// a department projection.
type EmployeeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DepartmentResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Employees   []EmployeeSummary `json:"employees"`
}

// FromDataModel shapes a stored department plus its eagerly loaded
// employees into the response projection.
func FromDataModel(d *datamodel.Department) *DepartmentResponse {
	employees := make([]EmployeeSummary, 0, len(d.Employees))
	for _, e := range d.Employees {
		employees = append(employees, EmployeeSummary{
			ID:    e.ID,
			Name:  e.Name,
			Email: e.Email,
		})
	}
	return &DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Employees:   employees,
	}
}
