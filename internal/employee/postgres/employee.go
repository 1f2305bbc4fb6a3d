package postgres

import (
	"errors"

	"gorm.io/gorm"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
	"github.com/frahmantamala/company-management/internal/employee"
)

// EmployeeRepository implements employee.Repository using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*datamodel.Employee, error) {
	var emps []*datamodel.Employee
	err := r.db.Preload("Department").Preload("Projects").Find(&emps).Error
	return emps, err
}

func (r *EmployeeRepository) GetByID(id string) (*datamodel.Employee, error) {
	var emp datamodel.Employee
	err := r.db.Preload("Department").Preload("Projects").Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&datamodel.Employee{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Create(emp *datamodel.Employee, projectIDs []string) error {
	if err := r.db.Create(emp).Error; err != nil {
		return err
	}

	if err := r.connectProjects(emp, projectIDs); err != nil {
		return err
	}

	return r.db.Preload("Department").Preload("Projects").Where("id = ?", emp.ID).First(emp).Error
}

func (r *EmployeeRepository) Update(id string, fields map[string]interface{}, projectIDs []string) (*datamodel.Employee, error) {
	emp := &datamodel.Employee{ID: id}

	if len(fields) > 0 {
		if err := r.db.Model(emp).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	if err := r.connectProjects(emp, projectIDs); err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete clears the project join rows first so the row removal never
// trips the join table's foreign keys.
func (r *EmployeeRepository) Delete(id string) error {
	if err := r.db.Model(&datamodel.Employee{ID: id}).Association("Projects").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&datamodel.Employee{}, "id = ?", id).Error
}

// connectProjects associates the listed projects as given; duplicates are
// not removed and existence is not verified beforehand.
func (r *EmployeeRepository) connectProjects(emp *datamodel.Employee, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}

	projects := make([]datamodel.Project, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		projects = append(projects, datamodel.Project{ID: projectID})
	}
	return r.db.Model(emp).Association("Projects").Append(&projects)
}
