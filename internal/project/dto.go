package project

import (
	"time"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

type CreateProjectDTO struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Employees   []string   `json:"employees,omitempty"`
}

func (dto CreateProjectDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MinLength(1).MaxLength(100)
	v.Field("description", dto.Description).MinLength(1).MaxLength(100)
	v.Field("employees", dto.Employees).UUIDList()
	return v.Validate()
}

// UpdateProjectDTO carries partial fields; the ID comes from the URL path.
type UpdateProjectDTO struct {
	ID          string     `json:"-"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Employees   []string   `json:"employees,omitempty"`
}

func (dto UpdateProjectDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", dto.ID).Required().UUID()
	v.Field("name", dto.Name).MinLength(1).MaxLength(100)
	v.Field("description", dto.Description).MinLength(1).MaxLength(100)
	v.Field("employees", dto.Employees).UUIDList()
	return v.Validate()
}

type EmployeeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProjectResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Employees   []EmployeeSummary `json:"employees"`
}

func FromDataModel(p *datamodel.Project) *ProjectResponse {
	employees := make([]EmployeeSummary, 0, len(p.Employees))
	for _, e := range p.Employees {
		employees = append(employees, EmployeeSummary{
			ID:    e.ID,
			Name:  e.Name,
			Email: e.Email,
		})
	}
	return &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Employees:   employees,
	}
}
