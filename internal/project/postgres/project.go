package postgres

import (
	"errors"

	"gorm.io/gorm"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
	"github.com/frahmantamala/company-management/internal/project"
)

// ProjectRepository implements project.Repository using GORM
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetAll() ([]*datamodel.Project, error) {
	var projects []*datamodel.Project
	err := r.db.Preload("Employees").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) GetByID(id string) (*datamodel.Project, error) {
	var proj datamodel.Project
	err := r.db.Preload("Employees").Where("id = ?", id).First(&proj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProjectNotFound
		}
		return nil, err
	}
	return &proj, nil
}

func (r *ProjectRepository) Create(proj *datamodel.Project, employeeIDs []string) error {
	if err := r.db.Create(proj).Error; err != nil {
		return err
	}

	if err := r.connectEmployees(proj, employeeIDs); err != nil {
		return err
	}

	return r.db.Preload("Employees").Where("id = ?", proj.ID).First(proj).Error
}

func (r *ProjectRepository) Update(id string, fields map[string]interface{}, employeeIDs []string) (*datamodel.Project, error) {
	proj := &datamodel.Project{ID: id}

	if len(fields) > 0 {
		if err := r.db.Model(proj).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	if err := r.connectEmployees(proj, employeeIDs); err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete clears the employee join rows first so the row removal never
// trips the join table's foreign keys.
func (r *ProjectRepository) Delete(id string) error {
	if err := r.db.Model(&datamodel.Project{ID: id}).Association("Employees").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&datamodel.Project{}, "id = ?", id).Error
}

// connectEmployees associates the listed employees as given; duplicates
// are not removed and existence is not verified beforehand.
func (r *ProjectRepository) connectEmployees(proj *datamodel.Project, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	employees := make([]datamodel.Employee, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		employees = append(employees, datamodel.Employee{ID: employeeID})
	}
	return r.db.Model(proj).Association("Employees").Append(&employees)
}
